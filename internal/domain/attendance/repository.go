package attendance

import (
	"context"
	"time"
)

type AttendanceLogRepository interface {
	// GetByEmployeeAndDate returns the log for one employee on one day,
	// or nil when nothing was recorded (a valid state, not an error).
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceLog, error)

	// ListByEmployeeAndRange returns the employee's logs for [start, end], ascending by date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceLog, error)

	// ListByRange returns every employee's logs for [start, end], ascending by date.
	ListByRange(ctx context.Context, start, end time.Time) ([]AttendanceLog, error)

	// Replace persists a validated payload as the employee's log for the day,
	// rebuilding sessions and breaks wholesale inside one transaction.
	Replace(ctx context.Context, employeeID string, date time.Time, payload ValidatedPayload) (AttendanceLog, error)

	// Delete removes the log for one employee on one day.
	Delete(ctx context.Context, employeeID string, date time.Time) error
}
