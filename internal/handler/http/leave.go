package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/leave"
	"github.com/timeflow-hq/timeflow-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	QuickRequest(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Request implements LeaveHandler.
func (h *leaveHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.RequestLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	created, err := h.leaveService.Request(r.Context(), req)
	if err != nil {
		slog.Error("Leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request created", created)
}

// QuickRequest implements LeaveHandler.
func (h *leaveHandlerImpl) QuickRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.QuickRequestLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Quick leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	created, err := h.leaveService.QuickRequest(r.Context(), req)
	if err != nil {
		slog.Error("Quick leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request created", created)
}

// Decide implements LeaveHandler.
func (h *leaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var body struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Leave decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := leave.DecideLeaveRequest{
		ApproverID: userID,
		LeaveID:    chi.URLParam(r, "leaveID"),
		Approve:    body.Approve,
	}
	if err := h.leaveService.Decide(r.Context(), req); err != nil {
		slog.Error("Leave decide service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request decided", nil)
}

// ListMine implements LeaveHandler.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("ListMine leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		slog.Error("ListPending leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}
