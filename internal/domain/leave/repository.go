package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// ListApprovedByEmployee returns the employee's approved requests whose
	// dates intersect [start, end].
	ListApprovedByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)

	// ListApprovedByRange returns every approved request whose dates intersect [start, end].
	ListApprovedByRange(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)
}
