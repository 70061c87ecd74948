package attendance

import (
	"fmt"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
)

// Pure edit helpers for host layers that keep the editable day log as an
// immutable value: every function returns a fresh RawLog, the input is never
// mutated. Rows are addressed by position.

// Editable fields accepted by ApplySessionEdit and ApplyBreakEdit.
const (
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldBreakType = "break_type"
)

// ApplySessionEdit sets one field of the session at index. An empty end_time
// clears the clock-out and leaves the session open.
func ApplySessionEdit(log attendance.RawLog, index int, field, value string) (attendance.RawLog, error) {
	if index < 0 || index >= len(log.Sessions) {
		return attendance.RawLog{}, fmt.Errorf("session index %d out of range", index)
	}

	next := cloneRawLog(log)
	row := &next.Sessions[index]

	switch field {
	case FieldStartTime:
		row.StartTime = &value
	case FieldEndTime:
		if value == "" {
			row.EndTime = nil
		} else {
			row.EndTime = &value
		}
	default:
		return attendance.RawLog{}, fmt.Errorf("unknown session field %q", field)
	}

	return next, nil
}

// ApplyBreakEdit sets one field of the break at index.
func ApplyBreakEdit(log attendance.RawLog, index int, field, value string) (attendance.RawLog, error) {
	if index < 0 || index >= len(log.Breaks) {
		return attendance.RawLog{}, fmt.Errorf("break index %d out of range", index)
	}

	next := cloneRawLog(log)
	row := &next.Breaks[index]

	switch field {
	case FieldStartTime:
		row.StartTime = &value
	case FieldEndTime:
		row.EndTime = &value
	case FieldBreakType:
		row.BreakType = &value
		row.Type = nil
	default:
		return attendance.RawLog{}, fmt.Errorf("unknown break field %q", field)
	}

	return next, nil
}

// AddSession appends an empty session row.
func AddSession(log attendance.RawLog) attendance.RawLog {
	next := cloneRawLog(log)
	next.Sessions = append(next.Sessions, attendance.RawSession{})
	return next
}

// RemoveSession drops the session at index.
func RemoveSession(log attendance.RawLog, index int) (attendance.RawLog, error) {
	if index < 0 || index >= len(log.Sessions) {
		return attendance.RawLog{}, fmt.Errorf("session index %d out of range", index)
	}
	next := cloneRawLog(log)
	next.Sessions = append(next.Sessions[:index], next.Sessions[index+1:]...)
	return next, nil
}

// AddBreak appends an empty break row.
func AddBreak(log attendance.RawLog) attendance.RawLog {
	next := cloneRawLog(log)
	next.Breaks = append(next.Breaks, attendance.RawBreak{})
	return next
}

// RemoveBreak drops the break at index.
func RemoveBreak(log attendance.RawLog, index int) (attendance.RawLog, error) {
	if index < 0 || index >= len(log.Breaks) {
		return attendance.RawLog{}, fmt.Errorf("break index %d out of range", index)
	}
	next := cloneRawLog(log)
	next.Breaks = append(next.Breaks[:index], next.Breaks[index+1:]...)
	return next, nil
}

// SetNotes replaces the notes text.
func SetNotes(log attendance.RawLog, notes string) attendance.RawLog {
	next := cloneRawLog(log)
	next.Notes = notes
	return next
}

func cloneRawLog(log attendance.RawLog) attendance.RawLog {
	next := log
	next.Sessions = make([]attendance.RawSession, len(log.Sessions))
	copy(next.Sessions, log.Sessions)
	next.Breaks = make([]attendance.RawBreak, len(log.Breaks))
	copy(next.Breaks, log.Breaks)
	return next
}
