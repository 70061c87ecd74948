package leave

import (
	"strings"
	"time"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest covers one or more calendar days with a single leave type.
// Only approved requests ever affect attendance classification.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Status     LeaveStatus
	LeaveDates []time.Time
	LeaveType  string
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Covers reports whether the request includes the given calendar day.
func (r LeaveRequest) Covers(date time.Time) bool {
	for _, d := range r.LeaveDates {
		if sameDay(d, date) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsHalfDay reports whether the leave type normalizes to a half day.
func IsHalfDay(leaveType string) bool {
	return strings.EqualFold(strings.TrimSpace(leaveType), "half day")
}

// IsFullDay reports whether the leave type normalizes to a full day.
func IsFullDay(leaveType string) bool {
	return strings.EqualFold(strings.TrimSpace(leaveType), "full day")
}
