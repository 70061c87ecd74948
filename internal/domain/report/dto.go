package report

import (
	"github.com/teamtrace/attendance-engine-go/internal/pkg/validator"
)

// ========================================
// DAY SUMMARY (cohort roll-up for one date)
// ========================================

type DaySummaryRequest struct {
	Date string `json:"date"`
}

func (r *DaySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DaySummary struct {
	Date       string `json:"date"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Total      int    `json:"total"`
	PresentPct int    `json:"present_pct"`
}

// ========================================
// PERIOD SUMMARY (per-employee roll-up over a range)
// ========================================

type PeriodSummaryRequest struct {
	EmployeeID string `json:"-"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *PeriodSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PeriodSummary struct {
	EmployeeID          string `json:"employee_id"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	PresentDays         int    `json:"present_days"`
	AbsentDays          int    `json:"absent_days"`
	ExpectedWorkingDays int    `json:"expected_working_days"`
	PresentPct          int    `json:"present_pct"`
}

// ========================================
// MUSTER ROLL (per-day, per-employee grid for a month)
// ========================================

type MusterRollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MusterRollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MusterRollRow struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	DayCodes     []string `json:"day_codes"`
	PresentDays  int      `json:"present_days"`
	AbsentDays   int      `json:"absent_days"`
}

type MusterRoll struct {
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	GeneratedAt string          `json:"generated_at"`
	Rows        []MusterRollRow `json:"rows"`
}
