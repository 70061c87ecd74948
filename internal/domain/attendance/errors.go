package attendance

import "errors"

// Attendance domain errors
var (
	// Time entry validation errors
	ErrInvalidTime         = errors.New("value does not parse to a valid time")
	ErrMissingField        = errors.New("required field is missing")
	ErrNonPositiveDuration = errors.New("end time must be after start time")
	ErrDurationExceedsMax  = errors.New("duration exceeds the 16 hour maximum")
	ErrInvalidBreakType    = errors.New("break type must be one of: Paid, Unpaid, Extra")

	// General errors
	ErrLogNotFound = errors.New("attendance log not found")
)
