package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/project"
	"github.com/timeflow-hq/timeflow-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created", created)
}

// Close implements ProjectHandler.
func (h *projectHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Close(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		slog.Error("Close project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project closed", nil)
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		projects []project.ProjectResponse
		err      error
	)
	if r.URL.Query().Get("status") == "active" {
		projects, err = h.projectService.ListActive(r.Context())
	} else {
		projects, err = h.projectService.List(r.Context())
	}
	if err != nil {
		slog.Error("List projects service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, projects)
}

// AddMember implements ProjectHandler.
func (h *projectHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
		response.BadRequest(w, "user_id is required", nil)
		return
	}

	if err := h.projectService.AddMember(r.Context(), chi.URLParam(r, "projectID"), body.UserID); err != nil {
		slog.Error("AddMember service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member added", nil)
}

// RemoveMember implements ProjectHandler.
func (h *projectHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.RemoveMember(r.Context(), chi.URLParam(r, "memberID")); err != nil {
		slog.Error("RemoveMember service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member removed", nil)
}

// ListMembers implements ProjectHandler.
func (h *projectHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.projectService.ListMembers(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		slog.Error("ListMembers service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, members)
}
