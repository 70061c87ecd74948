package report

import (
	"context"
	"fmt"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/domain/employee"
	"github.com/teamtrace/attendance-engine-go/internal/domain/holiday"
	"github.com/teamtrace/attendance-engine-go/internal/domain/leave"
	"github.com/teamtrace/attendance-engine-go/internal/domain/report"
	engine "github.com/teamtrace/attendance-engine-go/internal/service/attendance"
)

type ReportServiceImpl struct {
	logRepo      attendance.AttendanceLogRepository
	employeeRepo employee.EmployeeRepository
	holidayRepo  holiday.HolidayRepository
	leaveRepo    leave.LeaveRequestRepository
	classifier   *engine.Classifier
	loc          *time.Location
}

func NewReportService(
	logRepo attendance.AttendanceLogRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRequestRepository,
	classifier *engine.Classifier,
	loc *time.Location,
) report.ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportServiceImpl{
		logRepo:      logRepo,
		employeeRepo: employeeRepo,
		holidayRepo:  holidayRepo,
		leaveRepo:    leaveRepo,
		classifier:   classifier,
		loc:          loc,
	}
}

// GetDaySummary implements report.ReportService.
func (s *ReportServiceImpl) GetDaySummary(ctx context.Context, req report.DaySummaryRequest) (report.DaySummary, error) {
	if err := req.Validate(); err != nil {
		return report.DaySummary{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, s.loc)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return report.DaySummary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	snapshot, err := s.loadSnapshot(ctx, date, date)
	if err != nil {
		return report.DaySummary{}, err
	}

	return AggregateDay(date, employees, s.expectedFunc(snapshot), s.classifyFunc(snapshot)), nil
}

// GetPeriodSummary implements report.ReportService.
func (s *ReportServiceImpl) GetPeriodSummary(ctx context.Context, req report.PeriodSummaryRequest) (report.PeriodSummary, error) {
	if err := req.Validate(); err != nil {
		return report.PeriodSummary{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.loc)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.loc)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.PeriodSummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	snapshot, err := s.loadSnapshot(ctx, start, end)
	if err != nil {
		return report.PeriodSummary{}, err
	}

	return AggregatePeriod(emp, start, end, s.expectedFunc(snapshot), s.classifyFunc(snapshot)), nil
}

// GenerateMusterRoll implements report.ReportService.
func (s *ReportServiceImpl) GenerateMusterRoll(ctx context.Context, req report.MusterRollRequest) (report.MusterRoll, error) {
	if err := req.Validate(); err != nil {
		return report.MusterRoll{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.loc)
	periodEnd := periodStart.AddDate(0, 1, -1)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return report.MusterRoll{}, fmt.Errorf("failed to list employees: %w", err)
	}

	snapshot, err := s.loadSnapshot(ctx, periodStart, periodEnd)
	if err != nil {
		return report.MusterRoll{}, err
	}

	classify := s.classifyFunc(snapshot)

	rows := make([]report.MusterRollRow, 0, len(employees))
	for _, emp := range employees {
		row := report.MusterRollRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			DayCodes:     make([]string, 0, periodEnd.Day()),
		}
		for day := periodStart; !day.After(periodEnd); day = day.AddDate(0, 0, 1) {
			status := classify(day, emp)
			row.DayCodes = append(row.DayCodes, string(status.Code))
			switch status.Code {
			case attendance.StatusPresent:
				row.PresentDays++
			case attendance.StatusAbsent:
				row.AbsentDays++
			}
		}
		rows = append(rows, row)
	}

	return report.MusterRoll{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// snapshot is the immutable input set one report runs against. Everything is
// fetched once up front; the engine never touches the repositories itself.
type snapshot struct {
	holidays []holiday.Holiday
	leaves   []leave.LeaveRequest
	logs     map[string]map[string]*attendance.AttendanceLog
}

func (s *ReportServiceImpl) loadSnapshot(ctx context.Context, start, end time.Time) (snapshot, error) {
	holidays, err := s.holidayRepo.ListByRange(ctx, start, end)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	leaves, err := s.leaveRepo.ListApprovedByRange(ctx, start, end)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	logs, err := s.logRepo.ListByRange(ctx, start, end)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	logIndex := make(map[string]map[string]*attendance.AttendanceLog)
	for i := range logs {
		log := logs[i]
		byDate, ok := logIndex[log.EmployeeID]
		if !ok {
			byDate = make(map[string]*attendance.AttendanceLog)
			logIndex[log.EmployeeID] = byDate
		}
		byDate[log.Date.Format("2006-01-02")] = &logs[i]
	}

	return snapshot{holidays: holidays, leaves: leaves, logs: logIndex}, nil
}

func (s *ReportServiceImpl) classifyFunc(snap snapshot) ClassifyFunc {
	return func(date time.Time, emp employee.Employee) attendance.DayStatus {
		var log *attendance.AttendanceLog
		if byDate, ok := snap.logs[emp.ID]; ok {
			log = byDate[date.Format("2006-01-02")]
		}
		return s.classifier.Classify(date, log, emp, snap.holidays, snap.leaves)
	}
}

func (s *ReportServiceImpl) expectedFunc(snap snapshot) ExpectedFunc {
	return func(date time.Time, emp employee.Employee) bool {
		return s.classifier.ExpectedToWork(date, emp, snap.holidays, snap.leaves)
	}
}
