package report

import (
	"math"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/domain/employee"
	"github.com/teamtrace/attendance-engine-go/internal/domain/report"
)

// ClassifyFunc resolves one employee's status code for one day.
type ClassifyFunc func(date time.Time, emp employee.Employee) attendance.DayStatus

// ExpectedFunc reports whether one employee is expected to work on one day.
type ExpectedFunc func(date time.Time, emp employee.Employee) bool

// AggregateDay counts present vs absent across the employees expected to work
// on date. An empty cohort yields 0 percent, not a division error.
func AggregateDay(date time.Time, employees []employee.Employee, expected ExpectedFunc, classify ClassifyFunc) report.DaySummary {
	summary := report.DaySummary{Date: date.Format("2006-01-02")}

	for _, emp := range employees {
		if !expected(date, emp) {
			continue
		}
		summary.Total++
		switch classify(date, emp).Code {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		}
	}

	summary.PresentPct = roundPct(summary.Present, summary.Total)
	return summary
}

// AggregatePeriod rolls up one employee's day classifications over [start, end].
// The percentage is present days over expected working days in the range.
func AggregatePeriod(emp employee.Employee, start, end time.Time, expected ExpectedFunc, classify ClassifyFunc) report.PeriodSummary {
	summary := report.PeriodSummary{
		EmployeeID: emp.ID,
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if expected(day, emp) {
			summary.ExpectedWorkingDays++
		}
		switch classify(day, emp).Code {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
	}

	summary.PresentPct = roundPct(summary.PresentDays, summary.ExpectedWorkingDays)
	return summary
}

func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
