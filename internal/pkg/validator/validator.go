package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
	// Err is the sentinel the rule maps to, when the caller's domain has one.
	Err error
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the collected sentinels so errors.Is sees through the batch.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, err := range v {
		if err.Err != nil {
			errs = append(errs, err.Err)
		}
	}
	return errs
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	// Try RFC3339 format (ISO8601 with timezone)
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	// Try RFC3339Nano format (with nanoseconds)
	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

// IsValidClock checks if a string is a wall-clock value, "HH:MM" or "HH:MM:SS".
func IsValidClock(clockStr string) (time.Time, bool) {
	t, err := time.Parse("15:04", clockStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse("15:04:05", clockStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
