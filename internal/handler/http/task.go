package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/task"
	"github.com/timeflow-hq/timeflow-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPendingApproval(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// Create implements TaskHandler.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatorID = userID

	created, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task created", created)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CallerID = userID
	req.TaskID = chi.URLParam(r, "taskID")

	if err := h.taskService.UpdateStatus(r.Context(), req); err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task updated", nil)
}

// Approve implements TaskHandler.
func (h *taskHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var body struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Approve task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := task.ApproveTaskRequest{
		ApproverID: userID,
		TaskID:     chi.URLParam(r, "taskID"),
		Approve:    body.Approve,
	}
	if err := h.taskService.Approve(r.Context(), req); err != nil {
		slog.Error("Approve task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task approval updated", nil)
}

// ListMine implements TaskHandler.
func (h *taskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tasks, err := h.taskService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("ListMine task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		slog.Error("List task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// ListPendingApproval implements TaskHandler.
func (h *taskHandlerImpl) ListPendingApproval(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListPendingApproval(r.Context())
	if err != nil {
		slog.Error("ListPendingApproval task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}
