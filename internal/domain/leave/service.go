package leave

import "context"

// LeaveService defines the leave request lifecycle and the
// synchronization of generated time entries.
type LeaveService interface {
	// Request creates a pending request after checking the date range.
	Request(ctx context.Context, req RequestLeaveRequest) (LeaveRequestResponse, error)

	// QuickRequest creates a single-date pending request unless a
	// non-rejected request already covers that date.
	QuickRequest(ctx context.Context, req QuickRequestLeaveRequest) (LeaveRequestResponse, error)

	// Decide approves or rejects the request and reconciles the linked
	// time entries in the same transaction. Approval converges the
	// linked entry set to exactly the request's current date range;
	// rejection removes every linked entry. A request may be re-decided;
	// each decision re-runs the synchronizer.
	Decide(ctx context.Context, req DecideLeaveRequest) error

	ListMine(ctx context.Context, userID string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
}
