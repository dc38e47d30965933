package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/task"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, title, description, status, priority, percent_complete,
	start_date, due_date, project_id, assignee_id, created_by_id, approved, created_at`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.PercentComplete,
		&t.StartDate, &t.DueDate, &t.ProjectID, &t.AssigneeID, &t.CreatedByID, &t.Approved, &t.CreatedAt,
	)
	return t, err
}

// priorityRank orders low < medium < high < critical in SQL; the column
// stores the string token.
const priorityRank = `
	CASE priority
		WHEN 'critical' THEN 4
		WHEN 'high' THEN 3
		WHEN 'medium' THEN 2
		ELSE 1
	END`

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			id, title, description, status, priority, percent_complete,
			start_date, due_date, project_id, assignee_id, created_by_id, approved
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		t.Title, t.Description, t.Status, t.Priority, t.PercentComplete,
		t.StartDate, t.DueDate, t.ProjectID, t.AssigneeID, t.CreatedByID, t.Approved,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

func (r *taskRepository) list(ctx context.Context, query string, args ...interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepository) ListByAssignee(ctx context.Context, assigneeID string) ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assignee_id = $1
		ORDER BY ` + priorityRank + ` DESC, due_date NULLS LAST`
	return r.list(ctx, query, assigneeID)
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context) ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		ORDER BY ` + priorityRank + ` DESC, due_date NULLS LAST`
	return r.list(ctx, query)
}

// ListPendingApproval implements task.TaskRepository.
func (r *taskRepository) ListPendingApproval(ctx context.Context) ([]task.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE NOT approved ORDER BY created_at DESC`)
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status task.Status, percentComplete int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE tasks SET status = $2, percent_complete = $3 WHERE id = $1`,
		id, status, percentComplete)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// SetApproved implements task.TaskRepository.
func (r *taskRepository) SetApproved(ctx context.Context, id string, approved bool, status task.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE tasks SET approved = $2, status = $3 WHERE id = $1`,
		id, approved, status)
	if err != nil {
		return fmt.Errorf("failed to set task approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// AddComment implements task.TaskRepository.
func (r *taskRepository) AddComment(ctx context.Context, c task.Comment) (task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_comments (id, task_id, author_id, content)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, c.TaskID, c.AuthorID, c.Content).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return task.Comment{}, fmt.Errorf("failed to add task comment: %w", err)
	}
	return c, nil
}

// ListComments implements task.TaskRepository.
func (r *taskRepository) ListComments(ctx context.Context, taskID string) ([]task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, task_id, author_id, content, created_at FROM task_comments WHERE task_id = $1 ORDER BY created_at`,
		taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task comments: %w", err)
	}
	defer rows.Close()

	var comments []task.Comment
	for rows.Next() {
		var c task.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
