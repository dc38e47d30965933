package task

import "context"

// TaskService defines the task workflow: the creation approval gate and
// status transitions.
type TaskService interface {
	// Create creates a task. Tasks created by an employee start
	// unapproved in waiting status; manager/admin tasks start approved
	// and in progress.
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)

	// UpdateStatus moves the task to any status, clamps the completion
	// percent into [0,100] and records a non-empty comment as an audit
	// comment. Employees may only update tasks assigned to them.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error

	// Approve sets the approved flag. Approving a waiting task advances
	// it to in_progress; any other status is left untouched.
	Approve(ctx context.Context, req ApproveTaskRequest) error

	ListMine(ctx context.Context, userID string) ([]TaskResponse, error)
	// List returns every task (manager/admin overview).
	List(ctx context.Context) ([]TaskResponse, error)
	ListPendingApproval(ctx context.Context) ([]TaskResponse, error)
}
