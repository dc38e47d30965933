package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/report"
	"github.com/timeflow-hq/timeflow-backend-go/internal/handler/http/response"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/policy"
)

type ReportHandler interface {
	Utilization(w http.ResponseWriter, r *http.Request)
	ProjectLoad(w http.ResponseWriter, r *http.Request)
	DepartmentWorkload(w http.ResponseWriter, r *http.Request)
	TeamCalendar(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// daysParam resolves ?days= with a sane default and cap.
func daysParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return fallback
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return fallback
	}
	if days > 366 {
		return 366
	}
	return days
}

// Utilization implements ReportHandler.
func (h *reportHandlerImpl) Utilization(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Utilization(r.Context(), daysParam(r, 30))
	if err != nil {
		slog.Error("Utilization service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// ProjectLoad implements ReportHandler.
func (h *reportHandlerImpl) ProjectLoad(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.ProjectLoad(r.Context())
	if err != nil {
		slog.Error("ProjectLoad service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// DepartmentWorkload implements ReportHandler.
func (h *reportHandlerImpl) DepartmentWorkload(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.DepartmentWorkload(r.Context(), daysParam(r, 30))
	if err != nil {
		slog.Error("DepartmentWorkload service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// TeamCalendar implements ReportHandler.
func (h *reportHandlerImpl) TeamCalendar(w http.ResponseWriter, r *http.Request) {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := policy.ParseDate(raw)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		start = parsed
	}

	rows, err := h.reportService.TeamCalendar(r.Context(), start, daysParam(r, 14))
	if err != nil {
		slog.Error("TeamCalendar service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}
