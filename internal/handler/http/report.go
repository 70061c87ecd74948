package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/teamtrace/attendance-engine-go/internal/domain/report"
	"github.com/teamtrace/attendance-engine-go/internal/handler/http/response"
)

type ReportHandler interface {
	DaySummary(w http.ResponseWriter, r *http.Request)
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	MusterRoll(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DaySummary implements ReportHandler.
func (h *reportHandlerImpl) DaySummary(w http.ResponseWriter, r *http.Request) {
	req := report.DaySummaryRequest{
		Date: r.URL.Query().Get("date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetDaySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PeriodSummary implements ReportHandler.
func (h *reportHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	req := report.PeriodSummaryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetPeriodSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MusterRoll implements ReportHandler.
func (h *reportHandlerImpl) MusterRoll(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	req := report.MusterRollRequest{
		Month: month,
		Year:  year,
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateMusterRoll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
