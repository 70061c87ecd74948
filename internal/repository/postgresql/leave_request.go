package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/leave"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

// ListApprovedByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListApprovedByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	where := `lr.employee_id = $1 AND lr.status = 'approved'
		  AND EXISTS (
			SELECT 1 FROM leave_request_dates x
			WHERE x.leave_request_id = lr.id AND x.date >= $2 AND x.date <= $3
		  )`
	return r.list(ctx, where, employeeID, start, end)
}

// ListApprovedByRange implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListApprovedByRange(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	where := `lr.status = 'approved'
		  AND EXISTS (
			SELECT 1 FROM leave_request_dates x
			WHERE x.leave_request_id = lr.id AND x.date >= $1 AND x.date <= $2
		  )`
	return r.list(ctx, where, start, end)
}

func (r *leaveRequestRepository) list(ctx context.Context, where string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.status, lr.leave_type, lr.reason,
			   lr.created_at, lr.updated_at,
			   e.full_name AS employee_name,
			   array_agg(d.date ORDER BY d.date) AS leave_dates
		FROM leave_requests lr
		JOIN leave_request_dates d ON d.leave_request_id = lr.id
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE %s
		GROUP BY lr.id, lr.employee_id, lr.status, lr.leave_type, lr.reason,
				 lr.created_at, lr.updated_at, e.full_name
		ORDER BY lr.created_at ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		var status string
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &status, &lr.LeaveType, &lr.Reason,
			&lr.CreatedAt, &lr.UpdatedAt,
			&lr.EmployeeName, &lr.LeaveDates,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		lr.Status = leave.LeaveStatus(status)
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}
