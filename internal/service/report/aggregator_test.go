package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/domain/employee"
)

func statusFor(codes map[string]attendance.StatusCode) ClassifyFunc {
	return func(date time.Time, emp employee.Employee) attendance.DayStatus {
		code, ok := codes[emp.ID]
		if !ok {
			code = attendance.StatusAbsent
		}
		return attendance.DayStatus{Code: code, Label: code.Label()}
	}
}

func allExpected(date time.Time, emp employee.Employee) bool {
	return true
}

func TestAggregateDay_CountsPresentAndAbsent(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	employees := []employee.Employee{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	classify := statusFor(map[string]attendance.StatusCode{
		"a": attendance.StatusPresent,
		"b": attendance.StatusPresent,
		"c": attendance.StatusAbsent,
	})

	summary := AggregateDay(date, employees, allExpected, classify)

	assert.Equal(t, "2025-06-16", summary.Date)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 67, summary.PresentPct)
}

func TestAggregateDay_SkipsNotExpected(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	employees := []employee.Employee{{ID: "a"}, {ID: "b"}}

	expected := func(date time.Time, emp employee.Employee) bool {
		return emp.ID == "a"
	}
	classify := statusFor(map[string]attendance.StatusCode{
		"a": attendance.StatusPresent,
		"b": attendance.StatusPresent,
	})

	summary := AggregateDay(date, employees, expected, classify)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 100, summary.PresentPct)
}

func TestAggregateDay_EmptyCohortIsZeroPercent(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) // Sunday

	notExpected := func(date time.Time, emp employee.Employee) bool { return false }
	summary := AggregateDay(date, []employee.Employee{{ID: "a"}}, notExpected, statusFor(nil))

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.PresentPct)
}

func TestAggregatePeriod_RollsUpRange(t *testing.T) {
	emp := employee.Employee{ID: "a"}
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC) // Monday
	end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)   // Friday

	presentDays := map[int]bool{16: true, 17: true, 18: true}
	classify := func(date time.Time, e employee.Employee) attendance.DayStatus {
		if presentDays[date.Day()] {
			return attendance.DayStatus{Code: attendance.StatusPresent}
		}
		return attendance.DayStatus{Code: attendance.StatusAbsent}
	}

	summary := AggregatePeriod(emp, start, end, allExpected, classify)

	assert.Equal(t, "a", summary.EmployeeID)
	assert.Equal(t, "2025-06-16", summary.StartDate)
	assert.Equal(t, "2025-06-20", summary.EndDate)
	assert.Equal(t, 5, summary.ExpectedWorkingDays)
	assert.Equal(t, 3, summary.PresentDays)
	assert.Equal(t, 2, summary.AbsentDays)
	assert.Equal(t, 60, summary.PresentPct)
}

func TestAggregatePeriod_NonWorkingCodesNotCounted(t *testing.T) {
	emp := employee.Employee{ID: "a"}
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	classify := func(date time.Time, e employee.Employee) attendance.DayStatus {
		return attendance.DayStatus{Code: attendance.StatusHoliday}
	}
	notExpected := func(date time.Time, e employee.Employee) bool { return false }

	summary := AggregatePeriod(emp, day, day, notExpected, classify)

	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 0, summary.AbsentDays)
	assert.Equal(t, 0, summary.ExpectedWorkingDays)
	assert.Equal(t, 0, summary.PresentPct)
}
