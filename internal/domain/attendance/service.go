package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance log administration
type AttendanceService interface {
	// SaveDayLog validates a raw edited log and persists it whole (rebuild-and-replace)
	SaveDayLog(ctx context.Context, req SaveLogRequest) (LogResponse, error)

	// GetDayLog retrieves the stored log for an employee/date
	GetDayLog(ctx context.Context, employeeID, date string) (LogResponse, error)

	// GetDayTimeline reconciles the stored log into ordered work/break blocks
	GetDayTimeline(ctx context.Context, employeeID, date string) (TimelineResponse, error)

	// GetDayStatus classifies one calendar day for an employee
	GetDayStatus(ctx context.Context, employeeID, date string) (DayStatusResponse, error)

	// DeleteDayLog removes the stored log for an employee/date
	DeleteDayLog(ctx context.Context, employeeID, date string) error
}
