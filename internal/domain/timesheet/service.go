package timesheet

import (
	"context"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/project"
)

// TimesheetService defines the time ledger operations.
type TimesheetService interface {
	// AddEntry validates the raw date and hours, resolves the task/
	// project binding (task wins, project is discarded), computes the
	// backfill auto-approval and persists a work entry.
	AddEntry(ctx context.Context, req AddEntryRequest) (TimeEntryResponse, error)

	// DeleteEntry hard-deletes an entry owned by the caller, unless it
	// is locked.
	DeleteEntry(ctx context.Context, req DeleteEntryRequest) error

	// ApproveEntry flips the approved flag on a pending entry
	// (manager/admin surface).
	ApproveEntry(ctx context.Context, req ApproveEntryRequest) error

	// ListAllowedProjects returns the projects the user may book time
	// on: all active ones for managers/admins, owned-or-member active
	// ones for employees, ordered by code.
	ListAllowedProjects(ctx context.Context, userID string) ([]project.ProjectResponse, error)

	ListForDay(ctx context.Context, userID string, date time.Time) ([]TimeEntryResponse, error)
	ListPendingApproval(ctx context.Context) ([]TimeEntryResponse, error)
}
