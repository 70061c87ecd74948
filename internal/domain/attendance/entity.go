package attendance

import (
	"strings"
	"time"
)

// Session is a single clocked work span within a day.
// EndTime == nil means the employee has not clocked out yet.
type Session struct {
	StartTime time.Time
	EndTime   *time.Time
}

type BreakType string

const (
	BreakTypePaid   BreakType = "Paid"
	BreakTypeUnpaid BreakType = "Unpaid"
	BreakTypeExtra  BreakType = "Extra"
)

// ResolveBreakType normalizes a raw break type value against the closed enum.
// An empty value defaults to Unpaid; anything else must match (case-insensitive).
func ResolveBreakType(raw string) (BreakType, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return BreakTypeUnpaid, true
	}
	switch strings.ToLower(raw) {
	case "paid":
		return BreakTypePaid, true
	case "unpaid":
		return BreakTypeUnpaid, true
	case "extra":
		return BreakTypeExtra, true
	}
	return "", false
}

// BreakEntry is a bounded pause inside (or, for orphans, outside) a session.
type BreakEntry struct {
	StartTime time.Time
	EndTime   time.Time
	BreakType BreakType
}

// AttendanceLog is the one-per-employee-per-day record of sessions and breaks.
// Absence of a log for a day means no recorded activity on that day.
type AttendanceLog struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Sessions   []Session
	Breaks     []BreakEntry
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

type BlockType string

const (
	BlockTypeSession BlockType = "session"
	BlockTypeBreak   BlockType = "break"
)

// TimelineBlock is a derived, never-persisted slice of the day's timeline.
type TimelineBlock struct {
	Type      BlockType
	StartTime time.Time
	EndTime   *time.Time
	BreakType BreakType
}

type StatusCode string

const (
	StatusPresent       StatusCode = "P"
	StatusAbsent        StatusCode = "A"
	StatusHoliday       StatusCode = "HL"
	StatusWeekOff       StatusCode = "W"
	StatusLeave         StatusCode = "L"
	StatusHalfDayLeave  StatusCode = "HF"
	StatusFullDayLeave  StatusCode = "FF"
	StatusNotApplicable StatusCode = "N/A"
)

// Label returns the display label for a status code.
func (c StatusCode) Label() string {
	switch c {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	case StatusHoliday:
		return "Holiday"
	case StatusWeekOff:
		return "Week Off"
	case StatusLeave:
		return "Leave"
	case StatusHalfDayLeave:
		return "Half Day Leave"
	case StatusFullDayLeave:
		return "Full Day Leave"
	case StatusNotApplicable:
		return "N/A"
	}
	return string(c)
}

// DayStatus is the derived classification of one calendar day for one employee.
type DayStatus struct {
	Code   StatusCode
	Label  string
	Source string
}
