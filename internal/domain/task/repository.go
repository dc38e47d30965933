package task

import "context"

// TaskRepository defines data access methods for tasks and their audit
// comments.
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	// ListByAssignee returns the user's tasks ordered by priority then
	// due date (nulls last).
	ListByAssignee(ctx context.Context, assigneeID string) ([]Task, error)
	List(ctx context.Context) ([]Task, error)
	// ListPendingApproval returns tasks with approved=false, newest first.
	ListPendingApproval(ctx context.Context) ([]Task, error)
	UpdateStatus(ctx context.Context, id string, status Status, percentComplete int) error
	SetApproved(ctx context.Context, id string, approved bool, status Status) error

	AddComment(ctx context.Context, c Comment) (Comment, error)
	ListComments(ctx context.Context, taskID string) ([]Comment, error)
}
