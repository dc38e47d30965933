package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	AddEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	ApproveEntry(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPendingApproval(w http.ResponseWriter, r *http.Request)
	ListAllowedProjects(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// AddEntry implements TimesheetHandler.
func (h *timesheetHandlerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	entry, err := h.timesheetService.AddEntry(r.Context(), req)
	if err != nil {
		slog.Error("AddEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Time entry created", entry)
}

// DeleteEntry implements TimesheetHandler.
func (h *timesheetHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := timesheet.DeleteEntryRequest{
		UserID:  userID,
		EntryID: chi.URLParam(r, "entryID"),
	}
	if err := h.timesheetService.DeleteEntry(r.Context(), req); err != nil {
		slog.Error("DeleteEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Time entry deleted", nil)
}

// ApproveEntry implements TimesheetHandler.
func (h *timesheetHandlerImpl) ApproveEntry(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("ApproveEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := timesheet.ApproveEntryRequest{
		EntryID: chi.URLParam(r, "entryID"),
		Approve: body.Approve,
	}
	if err := h.timesheetService.ApproveEntry(r.Context(), req); err != nil {
		slog.Error("ApproveEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Time entry updated", nil)
}

// ListMine implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.timesheetService.ListForDay(r.Context(), userID, day)
	if err != nil {
		slog.Error("ListMine timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// ListPendingApproval implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListPendingApproval(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timesheetService.ListPendingApproval(r.Context())
	if err != nil {
		slog.Error("ListPendingApproval timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// ListAllowedProjects implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListAllowedProjects(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	projects, err := h.timesheetService.ListAllowedProjects(r.Context(), userID)
	if err != nil {
		slog.Error("ListAllowedProjects service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, projects)
}
