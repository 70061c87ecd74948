package attendance

import (
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/domain/employee"
	"github.com/teamtrace/attendance-engine-go/internal/domain/holiday"
	"github.com/teamtrace/attendance-engine-go/internal/domain/leave"
)

// Raw statuses produced by the Evaluator before code mapping.
const (
	RawStatusPresent    = "Present"
	RawStatusOnLeave    = "On Leave"
	RawStatusHoliday    = "Holiday"
	RawStatusWeekend    = "Weekend"
	RawStatusWeekOff    = "Week Off"
	RawStatusWorkingDay = "Working Day"
)

// Classification precedence sources, surfaced for auditability.
const (
	SourceFuture     = "future_date"
	SourceNotJoined  = "not_joined"
	SourceLeave      = "leave"
	SourceHoliday    = "holiday"
	SourceAttendance = "attendance"
	SourceCalendar   = "calendar"
	SourceDefault    = "default"
)

// EvalResult is the baseline day decision before the classifier maps it to a
// status code. Leave carries the resolved request when the status is leave.
type EvalResult struct {
	Status    string
	LeaveType string
	Leave     *leave.LeaveRequest
}

// Evaluator yields the baseline holiday/leave/weekend/present decision for a
// day. Its holiday-vs-leave precedence is a policy of the implementation, not
// of the classifier's code mapping.
type Evaluator interface {
	Evaluate(date time.Time, log *attendance.AttendanceLog, policy employee.SaturdayPolicy,
		holidays []holiday.Holiday, leaves []leave.LeaveRequest) EvalResult
}

// StandardEvaluator resolves approved leave ahead of declared holidays unless
// constructed with holiday precedence.
type StandardEvaluator struct {
	holidayFirst bool
}

func NewStandardEvaluator(holidayFirst bool) *StandardEvaluator {
	return &StandardEvaluator{holidayFirst: holidayFirst}
}

// Evaluate implements Evaluator.
func (e *StandardEvaluator) Evaluate(date time.Time, log *attendance.AttendanceLog, policy employee.SaturdayPolicy,
	holidays []holiday.Holiday, leaves []leave.LeaveRequest) EvalResult {

	leaveResult := func() *EvalResult {
		for i := range leaves {
			if leaves[i].Status != leave.LeaveStatusApproved {
				continue
			}
			if leaves[i].Covers(date) {
				return &EvalResult{Status: RawStatusOnLeave, LeaveType: leaves[i].LeaveType, Leave: &leaves[i]}
			}
		}
		return nil
	}

	holidayResult := func() *EvalResult {
		for _, h := range holidays {
			if h.Declared(date) {
				return &EvalResult{Status: RawStatusHoliday}
			}
		}
		return nil
	}

	first, second := leaveResult, holidayResult
	if e.holidayFirst {
		first, second = holidayResult, leaveResult
	}
	if res := first(); res != nil {
		return *res
	}
	if res := second(); res != nil {
		return *res
	}

	if log != nil && len(log.Sessions) > 0 {
		return EvalResult{Status: RawStatusPresent}
	}

	switch date.Weekday() {
	case time.Sunday:
		return EvalResult{Status: RawStatusWeekend}
	case time.Saturday:
		if !saturdayWorking(policy, date) {
			return EvalResult{Status: RawStatusWeekOff}
		}
	}

	return EvalResult{Status: RawStatusWorkingDay}
}

// Classifier maps one calendar day for one employee to exactly one status
// code. Pure over its inputs; "today" comes from the injected clock.
type Classifier struct {
	evaluator Evaluator
	now       func() time.Time
}

func NewClassifier(evaluator Evaluator, now func() time.Time) *Classifier {
	if evaluator == nil {
		evaluator = NewStandardEvaluator(false)
	}
	if now == nil {
		now = time.Now
	}
	return &Classifier{evaluator: evaluator, now: now}
}

// Classify returns the day status for date. Future dates and dates before the
// employee joined are N/A regardless of any log, holiday or leave supplied.
func (c *Classifier) Classify(date time.Time, log *attendance.AttendanceLog, emp employee.Employee,
	holidays []holiday.Holiday, leaves []leave.LeaveRequest) attendance.DayStatus {

	day := truncateToDay(date)

	if day.After(truncateToDay(c.now())) {
		return attendance.DayStatus{Code: attendance.StatusNotApplicable, Label: "N/A", Source: SourceFuture}
	}

	if day.Before(truncateToDay(emp.JoiningDate)) {
		return attendance.DayStatus{Code: attendance.StatusNotApplicable, Label: "Not Joined", Source: SourceNotJoined}
	}

	result := c.evaluator.Evaluate(day, log, emp.SaturdayPolicy, holidays, filterEmployeeLeaves(emp.ID, leaves))

	return mapResult(result)
}

// mapResult applies the code mapping, leave-derived codes first, falling back
// to Absent for anything unrecognized.
func mapResult(result EvalResult) attendance.DayStatus {
	if result.Status == RawStatusOnLeave || result.Leave != nil {
		switch {
		case leave.IsHalfDay(result.LeaveType):
			return dayStatus(attendance.StatusHalfDayLeave, SourceLeave)
		case leave.IsFullDay(result.LeaveType):
			return dayStatus(attendance.StatusFullDayLeave, SourceLeave)
		default:
			return dayStatus(attendance.StatusLeave, SourceLeave)
		}
	}

	switch result.Status {
	case RawStatusHoliday:
		return dayStatus(attendance.StatusHoliday, SourceHoliday)
	case RawStatusPresent:
		return dayStatus(attendance.StatusPresent, SourceAttendance)
	case RawStatusWeekend, RawStatusWeekOff:
		return dayStatus(attendance.StatusWeekOff, SourceCalendar)
	case RawStatusWorkingDay:
		return dayStatus(attendance.StatusAbsent, SourceCalendar)
	}

	return dayStatus(attendance.StatusAbsent, SourceDefault)
}

// ExpectedToWork reports whether the employee owes attendance on date: not
// future, not before joining, no declared holiday, no approved leave, not a
// Sunday, and Saturdays resolved against the employee's rotation policy.
func (c *Classifier) ExpectedToWork(date time.Time, emp employee.Employee,
	holidays []holiday.Holiday, leaves []leave.LeaveRequest) bool {

	day := truncateToDay(date)

	if day.After(truncateToDay(c.now())) {
		return false
	}
	if day.Before(truncateToDay(emp.JoiningDate)) {
		return false
	}

	for _, h := range holidays {
		if h.Declared(day) {
			return false
		}
	}

	for _, lr := range leaves {
		if lr.Status != leave.LeaveStatusApproved || lr.EmployeeID != emp.ID {
			continue
		}
		if lr.Covers(day) {
			return false
		}
	}

	switch day.Weekday() {
	case time.Sunday:
		return false
	case time.Saturday:
		return saturdayWorking(emp.SaturdayPolicy, day)
	}

	return true
}

// saturdayWorking resolves a Saturday against the rotation policy using the
// week-of-month, ceil(day/7).
func saturdayWorking(policy employee.SaturdayPolicy, date time.Time) bool {
	week := (date.Day() + 6) / 7

	switch policy {
	case employee.AllSaturdaysOff:
		return false
	case employee.Week1And3Off:
		return week != 1 && week != 3
	case employee.Week2And4Off:
		return week != 2 && week != 4
	}

	return true
}

func dayStatus(code attendance.StatusCode, source string) attendance.DayStatus {
	return attendance.DayStatus{Code: code, Label: code.Label(), Source: source}
}

func filterEmployeeLeaves(employeeID string, leaves []leave.LeaveRequest) []leave.LeaveRequest {
	filtered := make([]leave.LeaveRequest, 0, len(leaves))
	for _, lr := range leaves {
		if lr.EmployeeID == employeeID {
			filtered = append(filtered, lr)
		}
	}
	return filtered
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
