package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/report"
)

// AttendanceJobs holds the scheduled roll-up jobs for the attendance engine.
type AttendanceJobs struct {
	reportService report.ReportService
	loc           *time.Location
}

func NewAttendanceJobs(reportService report.ReportService, loc *time.Location) *AttendanceJobs {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceJobs{
		reportService: reportService,
		loc:           loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_attendance_digest", 1*time.Hour, j.DailyDigest)
}

// DailyDigest logs yesterday's presence roll-up. The job ticks hourly but
// only acts during the first hour of the engine's local day, so the digest
// is emitted once per day.
func (j *AttendanceJobs) DailyDigest(ctx context.Context) error {
	if time.Now().In(j.loc).Hour() != 0 {
		return nil
	}

	yesterday := time.Now().In(j.loc).AddDate(0, 0, -1).Format("2006-01-02")

	summary, err := j.reportService.GetDaySummary(ctx, report.DaySummaryRequest{Date: yesterday})
	if err != nil {
		return fmt.Errorf("failed to build daily digest: %w", err)
	}

	slog.Info("Cron: Daily attendance digest",
		"date", summary.Date,
		"present", summary.Present,
		"absent", summary.Absent,
		"total", summary.Total,
		"present_pct", summary.PresentPct)
	return nil
}
