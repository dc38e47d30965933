package project

import (
	"context"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(repo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{ProjectRepository: repo}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	p := project.Project{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		IsProject:    req.IsProject,
		Status:       project.StatusActive,
		PlannedHours: req.PlannedHours,
		OwnerID:      req.OwnerID,
	}
	if req.PlannedDueDate != nil {
		due, _ := time.Parse("2006-01-02", *req.PlannedDueDate)
		p.PlannedDueDate = &due
	}

	created, err := s.ProjectRepository.Create(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.ToResponse(created), nil
}

// Close implements project.ProjectService.
func (s *ProjectServiceImpl) Close(ctx context.Context, id string) error {
	return s.ProjectRepository.SetStatus(ctx, id, project.StatusClosed)
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return project.ToResponses(projects), nil
}

// ListActive implements project.ProjectService.
func (s *ProjectServiceImpl) ListActive(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return project.ToResponses(projects), nil
}

// AddMember implements project.ProjectService.
func (s *ProjectServiceImpl) AddMember(ctx context.Context, projectID, userID string) error {
	// Membership only makes sense on a live project.
	if _, err := s.ProjectRepository.GetActiveByID(ctx, projectID); err != nil {
		return err
	}
	return s.ProjectRepository.AddMember(ctx, projectID, userID)
}

// RemoveMember implements project.ProjectService.
func (s *ProjectServiceImpl) RemoveMember(ctx context.Context, memberID string) error {
	return s.ProjectRepository.RemoveMember(ctx, memberID)
}

// ListMembers implements project.ProjectService.
func (s *ProjectServiceImpl) ListMembers(ctx context.Context, projectID string) ([]project.Member, error) {
	return s.ProjectRepository.ListMembers(ctx, projectID)
}
