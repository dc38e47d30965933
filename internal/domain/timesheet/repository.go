package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for the time ledger.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	// ListByUserAndDate returns the user's entries for one day, oldest
	// first.
	ListByUserAndDate(ctx context.Context, userID string, date time.Time) ([]TimeEntry, error)
	// ListPendingApproval returns unapproved entries, most recent date
	// first.
	ListPendingApproval(ctx context.Context) ([]TimeEntry, error)
	// ListByLeaveRequest returns entries generated for a leave request.
	ListByLeaveRequest(ctx context.Context, leaveRequestID string) ([]TimeEntry, error)
	Delete(ctx context.Context, id string) error
	// DeleteByLeaveRequest removes every entry linked to the request.
	DeleteByLeaveRequest(ctx context.Context, leaveRequestID string) error
	SetApproved(ctx context.Context, id string, approved bool) error
	// Refresh overwrites hours, notes, approved and locked on an
	// existing entry. Used only by the leave synchronizer, which owns
	// locked entries.
	Refresh(ctx context.Context, id string, hours float64, notes string, approved, locked bool) error
	// LockOlderThan locks approved work entries dated on or before
	// cutoff and returns the number of entries locked. Used by period
	// close.
	LockOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
