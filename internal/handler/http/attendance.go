package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/attendance"
	"github.com/timeflow-hq/timeflow-backend-go/internal/handler/http/response"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/policy"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// requestDay resolves the ?date= query parameter, defaulting to today.
func requestDay(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	return policy.ParseDate(raw)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now().UTC()
	day := now.Truncate(24 * time.Hour)
	resp, err := h.attendanceService.CheckIn(r.Context(), userID, day, now)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now().UTC()
	day := now.Truncate(24 * time.Hour)
	resp, err := h.attendanceService.CheckOut(r.Context(), userID, day, now)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetMy implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	day, err := requestDay(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.GetForDay(r.Context(), userID, day)
	if err != nil {
		slog.Error("GetMy attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
