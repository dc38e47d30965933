package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, r LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// ListByUser returns the user's requests, newest first.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	// ListPending returns pending requests, newest first.
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	// ListOverlapping returns the user's requests whose range intersects
	// [from, to], any status.
	ListOverlapping(ctx context.Context, userID string, from, to time.Time) ([]LeaveRequest, error)
	// HasCovering reports whether the user has a non-rejected request
	// whose range covers the date. Used by the calendar quick-create
	// duplicate guard.
	HasCovering(ctx context.Context, userID string, date time.Time) (bool, error)
	SetDecision(ctx context.Context, id string, status Status, approverID string) error
	// UpdateRange rewrites the request's date span. A later re-approval
	// re-synchronizes the generated entries to the new range.
	UpdateRange(ctx context.Context, id string, from, to time.Time) error
}
