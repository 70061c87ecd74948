package report

import (
	"context"
)

// ReportService defines attendance roll-up reports
type ReportService interface {
	// GetDaySummary counts present vs absent across employees expected to work on a date
	GetDaySummary(ctx context.Context, req DaySummaryRequest) (DaySummary, error)

	// GetPeriodSummary rolls up one employee's day classifications over a date range
	GetPeriodSummary(ctx context.Context, req PeriodSummaryRequest) (PeriodSummary, error)

	// GenerateMusterRoll builds the per-day, per-employee status grid for a month
	GenerateMusterRoll(ctx context.Context, req MusterRollRequest) (MusterRoll, error)
}
