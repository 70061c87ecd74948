package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/validator"
)

// maxEntrySpan caps a single session or break. Anything longer is a data
// entry mistake, rollover adjustment included.
const maxEntrySpan = 16 * time.Hour

// PayloadValidator cleans a raw edited day log into the canonical payload the
// persistence layer accepts. Every row is visited so the UI can surface all
// errors at once; any invalid row means no payload at all.
type PayloadValidator struct {
	normalizer *Normalizer
}

func NewPayloadValidator(normalizer *Normalizer) *PayloadValidator {
	return &PayloadValidator{normalizer: normalizer}
}

// BuildValidatedPayload validates and normalizes raw session/break rows
// against the given attendance day. Row errors carry the 1-indexed position
// and the first rule the row violated.
func (v *PayloadValidator) BuildValidatedPayload(date time.Time, raw attendance.RawLog) (attendance.ValidatedPayload, error) {
	var errs validator.ValidationErrors

	sessions := make([]attendance.Session, 0, len(raw.Sessions))
	for i, row := range raw.Sessions {
		cleaned, rowErr := v.cleanSession(date, row, i+1)
		if rowErr != nil {
			errs = append(errs, *rowErr)
			continue
		}
		sessions = append(sessions, cleaned)
	}

	breaks := make([]attendance.BreakEntry, 0, len(raw.Breaks))
	for i, row := range raw.Breaks {
		cleaned, rowErr := v.cleanBreak(date, row, i+1)
		if rowErr != nil {
			errs = append(errs, *rowErr)
			continue
		}
		breaks = append(breaks, cleaned)
	}

	if len(errs) > 0 {
		return attendance.ValidatedPayload{}, errs
	}

	return attendance.ValidatedPayload{
		Sessions:       sessions,
		Breaks:         breaks,
		Notes:          strings.TrimSpace(raw.Notes),
		AttendanceDate: raw.AttendanceDate,
	}, nil
}

func (v *PayloadValidator) cleanSession(date time.Time, row attendance.RawSession, pos int) (attendance.Session, *validator.ValidationError) {
	field := fmt.Sprintf("sessions[%d]", pos)

	if row.StartTime == nil || validator.IsEmpty(*row.StartTime) {
		return attendance.Session{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("session %d: start_time is required", pos),
			Err:     attendance.ErrMissingField,
		}
	}

	start, err := v.normalizer.Combine(date, *row.StartTime)
	if err != nil {
		return attendance.Session{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("session %d: start_time %q is not a valid time", pos, *row.StartTime),
			Err:     attendance.ErrInvalidTime,
		}
	}

	// Missing end means the employee has not clocked out; keep the session open.
	if row.EndTime == nil || validator.IsEmpty(*row.EndTime) {
		return attendance.Session{StartTime: start}, nil
	}

	end, err := v.normalizer.Combine(date, *row.EndTime)
	if err != nil {
		return attendance.Session{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("session %d: end_time %q is not a valid time", pos, *row.EndTime),
			Err:     attendance.ErrInvalidTime,
		}
	}

	end = v.normalizer.AdjustForRollover(start, end)

	duration := end.Sub(start)
	if duration <= 0 {
		return attendance.Session{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("session %d: end_time must be after start_time", pos),
			Err:     attendance.ErrNonPositiveDuration,
		}
	}
	if duration > maxEntrySpan {
		return attendance.Session{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("session %d: duration exceeds the 16 hour maximum", pos),
			Err:     attendance.ErrDurationExceedsMax,
		}
	}

	return attendance.Session{StartTime: start, EndTime: &end}, nil
}

func (v *PayloadValidator) cleanBreak(date time.Time, row attendance.RawBreak, pos int) (attendance.BreakEntry, *validator.ValidationError) {
	field := fmt.Sprintf("breaks[%d]", pos)

	if row.StartTime == nil || validator.IsEmpty(*row.StartTime) {
		return attendance.BreakEntry{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("break %d: start_time is required", pos),
			Err:     attendance.ErrMissingField,
		}
	}

	start, err := v.normalizer.Combine(date, *row.StartTime)
	if err != nil {
		return attendance.BreakEntry{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("break %d: start_time %q is not a valid time", pos, *row.StartTime),
			Err:     attendance.ErrInvalidTime,
		}
	}

	// Unlike sessions, a break is never open-ended.
	if row.EndTime == nil || validator.IsEmpty(*row.EndTime) {
		return attendance.BreakEntry{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("break %d: end_time is required", pos),
			Err:     attendance.ErrMissingField,
		}
	}

	end, err := v.normalizer.Combine(date, *row.EndTime)
	if err != nil {
		return attendance.BreakEntry{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("break %d: end_time %q is not a valid time", pos, *row.EndTime),
			Err:     attendance.ErrInvalidTime,
		}
	}

	end = v.normalizer.AdjustForRollover(start, end)

	duration := end.Sub(start)
	if duration <= 0 {
		return attendance.BreakEntry{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("break %d: end_time must be after start_time", pos),
			Err:     attendance.ErrNonPositiveDuration,
		}
	}
	if duration > maxEntrySpan {
		return attendance.BreakEntry{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("break %d: duration exceeds the 16 hour maximum", pos),
			Err:     attendance.ErrDurationExceedsMax,
		}
	}

	rawType := ""
	if row.BreakType != nil {
		rawType = *row.BreakType
	} else if row.Type != nil {
		// Legacy field name from older editor payloads.
		rawType = *row.Type
	}

	breakType, ok := attendance.ResolveBreakType(rawType)
	if !ok {
		return attendance.BreakEntry{}, &validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("break %d: break_type %q must be one of: Paid, Unpaid, Extra", pos, rawType),
			Err:     attendance.ErrInvalidBreakType,
		}
	}

	return attendance.BreakEntry{StartTime: start, EndTime: end, BreakType: breakType}, nil
}
