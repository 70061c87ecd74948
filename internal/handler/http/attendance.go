package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SaveLog(w http.ResponseWriter, r *http.Request)
	GetLog(w http.ResponseWriter, r *http.Request)
	GetTimeline(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	DeleteLog(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// SaveLog implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveLog(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveLogRequest

	if err := json.NewDecoder(r.Body).Decode(&req.Log); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.Date = chi.URLParam(r, "date")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.SaveDayLog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance log saved", result)
}

// GetLog implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetLog(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetDayLog(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTimeline implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetTimeline(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetDayTimeline(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetDayStatus(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteLog implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteLog(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	if err := h.attendanceService.DeleteDayLog(r.Context(), employeeID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance log deleted", nil)
}
