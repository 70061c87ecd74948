package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/domain/employee"
	"github.com/teamtrace/attendance-engine-go/internal/domain/holiday"
	"github.com/teamtrace/attendance-engine-go/internal/domain/leave"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceLogRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	leave.LeaveRequestRepository
	payloadValidator *PayloadValidator
	classifier       *Classifier
	loc              *time.Location
}

func NewAttendanceService(
	db *database.DB,
	logRepo attendance.AttendanceLogRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRequestRepository,
	payloadValidator *PayloadValidator,
	classifier *Classifier,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceServiceImpl{
		db:                      db,
		AttendanceLogRepository: logRepo,
		EmployeeRepository:      employeeRepo,
		HolidayRepository:       holidayRepo,
		LeaveRequestRepository:  leaveRepo,
		payloadValidator:        payloadValidator,
		classifier:              classifier,
		loc:                     loc,
	}
}

// SaveDayLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SaveDayLog(ctx context.Context, req attendance.SaveLogRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	payload, err := s.payloadValidator.BuildValidatedPayload(date, req.Log)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	saved, err := s.AttendanceLogRepository.Replace(ctx, req.EmployeeID, date, payload)
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to replace attendance log: %w", err)
	}

	return mapLogToResponse(saved), nil
}

// GetDayLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDayLog(ctx context.Context, employeeID, dateStr string) (attendance.LogResponse, error) {
	date, err := s.parseDate(dateStr)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	log, err := s.AttendanceLogRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to get attendance log: %w", err)
	}
	if log == nil {
		return attendance.LogResponse{}, attendance.ErrLogNotFound
	}

	return mapLogToResponse(*log), nil
}

// GetDayTimeline implements attendance.AttendanceService. A day with no
// recorded activity reconciles to an empty timeline, not an error.
func (s *AttendanceServiceImpl) GetDayTimeline(ctx context.Context, employeeID, dateStr string) (attendance.TimelineResponse, error) {
	date, err := s.parseDate(dateStr)
	if err != nil {
		return attendance.TimelineResponse{}, err
	}

	log, err := s.AttendanceLogRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.TimelineResponse{}, fmt.Errorf("failed to get attendance log: %w", err)
	}

	var blocks []attendance.TimelineBlock
	if log != nil {
		blocks = Reconcile(log.Sessions, log.Breaks)
	}

	responses := make([]attendance.TimelineBlockResponse, 0, len(blocks))
	for _, block := range blocks {
		responses = append(responses, mapBlockToResponse(block))
	}

	return attendance.TimelineResponse{
		EmployeeID: employeeID,
		Date:       date.Format("2006-01-02"),
		Blocks:     responses,
	}, nil
}

// GetDayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDayStatus(ctx context.Context, employeeID, dateStr string) (attendance.DayStatusResponse, error) {
	date, err := s.parseDate(dateStr)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	log, err := s.AttendanceLogRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to get attendance log: %w", err)
	}

	holidays, err := s.HolidayRepository.ListByRange(ctx, date, date)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	leaves, err := s.LeaveRequestRepository.ListApprovedByEmployee(ctx, employeeID, date, date)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	status := s.classifier.Classify(date, log, emp, holidays, leaves)

	return attendance.DayStatusResponse{
		EmployeeID: employeeID,
		Date:       date.Format("2006-01-02"),
		Code:       string(status.Code),
		Label:      status.Label,
		Source:     status.Source,
	}, nil
}

// DeleteDayLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteDayLog(ctx context.Context, employeeID, dateStr string) error {
	date, err := s.parseDate(dateStr)
	if err != nil {
		return err
	}

	if err := s.AttendanceLogRepository.Delete(ctx, employeeID, date); err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}

	return nil
}

func (s *AttendanceServiceImpl) parseDate(dateStr string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", dateStr, attendance.ErrInvalidTime)
	}
	return date, nil
}

// mapLogToResponse converts an AttendanceLog entity to LogResponse
func mapLogToResponse(log attendance.AttendanceLog) attendance.LogResponse {
	sessions := make([]attendance.SessionResponse, 0, len(log.Sessions))
	for _, session := range log.Sessions {
		sessions = append(sessions, attendance.SessionResponse{
			StartTime: session.StartTime.Format(time.RFC3339),
			EndTime:   timePtrToString(session.EndTime),
		})
	}

	breaks := make([]attendance.BreakResponse, 0, len(log.Breaks))
	for _, br := range log.Breaks {
		breaks = append(breaks, attendance.BreakResponse{
			StartTime: br.StartTime.Format(time.RFC3339),
			EndTime:   br.EndTime.Format(time.RFC3339),
			BreakType: string(br.BreakType),
		})
	}

	resp := attendance.LogResponse{
		ID:           log.ID,
		EmployeeID:   log.EmployeeID,
		EmployeeName: log.EmployeeName,
		Date:         log.Date.Format("2006-01-02"),
		Sessions:     sessions,
		Breaks:       breaks,
		Notes:        log.Notes,
	}
	if !log.CreatedAt.IsZero() {
		resp.CreatedAt = log.CreatedAt.Format("2006-01-02 15:04:05")
	}
	if !log.UpdatedAt.IsZero() {
		resp.UpdatedAt = log.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func mapBlockToResponse(block attendance.TimelineBlock) attendance.TimelineBlockResponse {
	resp := attendance.TimelineBlockResponse{
		Type:      string(block.Type),
		StartTime: block.StartTime.Format(time.RFC3339),
		EndTime:   timePtrToString(block.EndTime),
	}
	if block.Type == attendance.BlockTypeBreak {
		breakType := string(block.BreakType)
		resp.BreakType = &breakType
	}
	return resp
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
