package task

import (
	"context"
	"fmt"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/task"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/policy"
)

type TaskServiceImpl struct {
	task.TaskRepository
	user.UserRepository
}

func NewTaskService(tasks task.TaskRepository, users user.UserRepository) task.TaskService {
	return &TaskServiceImpl{TaskRepository: tasks, UserRepository: users}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	creator, err := s.UserRepository.GetByID(ctx, req.CreatorID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to get creator: %w", err)
	}

	t := task.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    task.PriorityMedium,
		AssigneeID:  req.AssigneeID,
		CreatedByID: creator.ID,
	}
	if req.Priority != "" {
		t.Priority = task.Priority(req.Priority)
	}
	if req.StartDate != nil {
		d, err := policy.ParseDate(*req.StartDate)
		if err != nil {
			return task.TaskResponse{}, err
		}
		t.StartDate = &d
	}
	if req.DueDate != nil {
		d, err := policy.ParseDate(*req.DueDate)
		if err != nil {
			return task.TaskResponse{}, err
		}
		t.DueDate = &d
	}
	if req.ProjectID != nil && *req.ProjectID != "" {
		t.ProjectID = req.ProjectID
	}

	// Employee-created tasks wait for manager approval; manager and
	// admin tasks start approved and running.
	if creator.IsManager() {
		t.Approved = true
		t.Status = task.StatusInProgress
	} else {
		t.Approved = false
		t.Status = task.StatusWaiting
	}

	created, err := s.TaskRepository.Create(ctx, t)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(created), nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	t, err := s.TaskRepository.GetByID(ctx, req.TaskID)
	if err != nil {
		return err
	}

	caller, err := s.UserRepository.GetByID(ctx, req.CallerID)
	if err != nil {
		return fmt.Errorf("failed to get caller: %w", err)
	}
	if !caller.IsManager() && t.AssigneeID != caller.ID {
		return task.ErrForbidden
	}

	percent := req.Percent
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	// Transitions are deliberately unrestricted: any status may move to
	// any other, including reopening done or canceled tasks.
	if err := s.TaskRepository.UpdateStatus(ctx, t.ID, task.Status(req.Status), percent); err != nil {
		return err
	}

	if req.Comment != "" {
		_, err := s.TaskRepository.AddComment(ctx, task.Comment{
			TaskID:   t.ID,
			AuthorID: caller.ID,
			Content:  req.Comment,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Approve implements task.TaskService.
func (s *TaskServiceImpl) Approve(ctx context.Context, req task.ApproveTaskRequest) error {
	t, err := s.TaskRepository.GetByID(ctx, req.TaskID)
	if err != nil {
		return err
	}

	status := t.Status
	if req.Approve && status == task.StatusWaiting {
		status = task.StatusInProgress
	}
	return s.TaskRepository.SetApproved(ctx, t.ID, req.Approve, status)
}

// ListMine implements task.TaskService.
func (s *TaskServiceImpl) ListMine(ctx context.Context, userID string) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	return task.ToResponses(tasks), nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return task.ToResponses(tasks), nil
}

// ListPendingApproval implements task.TaskService.
func (s *TaskServiceImpl) ListPendingApproval(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListPendingApproval(ctx)
	if err != nil {
		return nil, err
	}
	return task.ToResponses(tasks), nil
}
