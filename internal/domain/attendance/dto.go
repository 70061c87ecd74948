package attendance

import (
	"github.com/teamtrace/attendance-engine-go/internal/pkg/validator"
)

// ========================================
// RAW EDITOR INPUT
// ========================================

// RawSession is one session row as edited in the admin UI. Times may be
// "HH:MM", "HH:MM:SS" or a full RFC3339 timestamp. Unknown input fields are
// dropped at decode time; only start/end survive validation.
type RawSession struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// RawBreak is one break row as edited in the admin UI. BreakType falls back
// to the legacy "type" field name; both absent means Unpaid.
type RawBreak struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	BreakType *string `json:"break_type,omitempty"`
	Type      *string `json:"type,omitempty"`
}

// RawLog is the full editable day log as submitted by an administrator.
type RawLog struct {
	AttendanceDate *string      `json:"attendance_date,omitempty"`
	Sessions       []RawSession `json:"sessions"`
	Breaks         []RawBreak   `json:"breaks"`
	Notes          string       `json:"notes"`
}

// ValidatedPayload is the cleaned, canonical form of a RawLog. It is the only
// shape the persistence layer accepts; a log is always rebuilt from it whole.
type ValidatedPayload struct {
	Sessions       []Session
	Breaks         []BreakEntry
	Notes          string
	AttendanceDate *string
}

// ========================================
// REQUESTS
// ========================================

type SaveLogRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"-"`
	Log        RawLog `json:"log"`
}

func (r *SaveLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
			Err:     ErrMissingField,
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
			Err:     ErrInvalidTime,
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type SessionResponse struct {
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type BreakResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	BreakType string `json:"break_type"`
}

type LogResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName *string           `json:"employee_name,omitempty"`
	Date         string            `json:"date"`
	Sessions     []SessionResponse `json:"sessions"`
	Breaks       []BreakResponse   `json:"breaks"`
	Notes        string            `json:"notes"`
	CreatedAt    string            `json:"created_at,omitempty"`
	UpdatedAt    string            `json:"updated_at,omitempty"`
}

type TimelineBlockResponse struct {
	Type      string  `json:"type"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
	BreakType *string `json:"break_type,omitempty"`
}

type TimelineResponse struct {
	EmployeeID string                  `json:"employee_id"`
	Date       string                  `json:"date"`
	Blocks     []TimelineBlockResponse `json:"blocks"`
}

type DayStatusResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Code       string `json:"code"`
	Label      string `json:"label"`
	Source     string `json:"source,omitempty"`
}
