package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/project"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/task"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/policy"
)

type TimesheetServiceImpl struct {
	timesheet.TimeEntryRepository
	task.TaskRepository
	project.ProjectRepository
	user.UserRepository
	allowBackfillDays int
}

func NewTimesheetService(
	entries timesheet.TimeEntryRepository,
	tasks task.TaskRepository,
	projects project.ProjectRepository,
	users user.UserRepository,
	allowBackfillDays int,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		TimeEntryRepository: entries,
		TaskRepository:      tasks,
		ProjectRepository:   projects,
		UserRepository:      users,
		allowBackfillDays:   allowBackfillDays,
	}
}

// AddEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) AddEntry(ctx context.Context, req timesheet.AddEntryRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	hours, err := policy.ValidateHours(req.Hours)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}
	date, err := policy.ParseDate(req.Date)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	entry := timesheet.TimeEntry{
		UserID:    req.UserID,
		Date:      date,
		Hours:     hours,
		Notes:     req.Notes,
		EntryType: timesheet.EntryTypeWork,
	}

	// Task binding wins over project binding; an entry carries at most
	// one of the two.
	switch {
	case req.TaskID != nil && *req.TaskID != "":
		t, err := s.TaskRepository.GetByID(ctx, *req.TaskID)
		if err != nil {
			return timesheet.TimeEntryResponse{}, err
		}
		// The assignee restriction only applies to employees; managers and
		// admins may log time against anyone's task.
		if t.AssigneeID != req.UserID {
			u, err := s.UserRepository.GetByID(ctx, req.UserID)
			if err != nil {
				return timesheet.TimeEntryResponse{}, fmt.Errorf("failed to get user: %w", err)
			}
			if !u.IsManager() {
				return timesheet.TimeEntryResponse{}, timesheet.ErrTaskForbidden
			}
		}
		entry.TaskID = &t.ID
	case req.ProjectID != nil && *req.ProjectID != "":
		p, err := s.ProjectRepository.GetActiveByID(ctx, *req.ProjectID)
		if err != nil {
			return timesheet.TimeEntryResponse{}, err
		}
		allowed, err := s.projectAllowed(ctx, p, req.UserID)
		if err != nil {
			return timesheet.TimeEntryResponse{}, err
		}
		if !allowed {
			return timesheet.TimeEntryResponse{}, timesheet.ErrProjectForbidden
		}
		entry.ProjectID = &p.ID
	}

	entry.Approved = policy.IsBackfillApproved(date, time.Now().UTC(), s.allowBackfillDays)

	created, err := s.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}
	return timesheet.ToResponse(created), nil
}

func (s *TimesheetServiceImpl) projectAllowed(ctx context.Context, p project.Project, userID string) (bool, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get user: %w", err)
	}
	if u.IsManager() {
		return true, nil
	}
	if p.OwnerID != nil && *p.OwnerID == userID {
		return true, nil
	}
	return s.ProjectRepository.IsMember(ctx, p.ID, userID)
}

// DeleteEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteEntry(ctx context.Context, req timesheet.DeleteEntryRequest) error {
	entry, err := s.TimeEntryRepository.GetByID(ctx, req.EntryID)
	if err != nil {
		return err
	}
	if entry.UserID != req.UserID {
		return timesheet.ErrForbidden
	}
	if entry.Locked {
		return timesheet.ErrEntryLocked
	}
	return s.TimeEntryRepository.Delete(ctx, entry.ID)
}

// ApproveEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ApproveEntry(ctx context.Context, req timesheet.ApproveEntryRequest) error {
	return s.TimeEntryRepository.SetApproved(ctx, req.EntryID, req.Approve)
}

// ListAllowedProjects implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListAllowedProjects(ctx context.Context, userID string) ([]project.ProjectResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var projects []project.Project
	if u.IsManager() {
		projects, err = s.ProjectRepository.ListActive(ctx)
	} else {
		projects, err = s.ProjectRepository.ListAllowed(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return project.ToResponses(projects), nil
}

// ListForDay implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListForDay(ctx context.Context, userID string, date time.Time) ([]timesheet.TimeEntryResponse, error) {
	entries, err := s.TimeEntryRepository.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return timesheet.ToResponses(entries), nil
}

// ListPendingApproval implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListPendingApproval(ctx context.Context) ([]timesheet.TimeEntryResponse, error) {
	entries, err := s.TimeEntryRepository.ListPendingApproval(ctx)
	if err != nil {
		return nil, err
	}
	return timesheet.ToResponses(entries), nil
}
