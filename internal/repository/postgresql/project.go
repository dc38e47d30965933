package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/project"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, code, name, description, is_project, status, planned_hours, owner_id, date_created, planned_due_date`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.IsProject,
		&p.Status, &p.PlannedHours, &p.OwnerID, &p.DateCreated, &p.PlannedDueDate,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, code, name, description, is_project, status, planned_hours, owner_id, planned_due_date)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date_created
	`

	err := q.QueryRow(ctx, query,
		p.Code, p.Name, p.Description, p.IsProject, p.Status, p.PlannedHours, p.OwnerID, p.PlannedDueDate,
	).Scan(&p.ID, &p.DateCreated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.Project{}, project.ErrCodeExists
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetActiveByID implements project.ProjectRepository.
func (r *projectRepository) GetActiveByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1 AND status = 'active'`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get active project: %w", err)
	}
	return p, nil
}

func (r *projectRepository) list(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListActive implements project.ProjectRepository.
func (r *projectRepository) ListActive(ctx context.Context) ([]project.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE status = 'active' ORDER BY code`)
}

// ListAllowed implements project.ProjectRepository.
func (r *projectRepository) ListAllowed(ctx context.Context, userID string) ([]project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE status = 'active'
		  AND (owner_id = $1 OR id IN (SELECT project_id FROM project_members WHERE user_id = $1))
		ORDER BY code
	`
	return r.list(ctx, query, userID)
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY status DESC, code`)
}

// SetStatus implements project.ProjectRepository.
func (r *projectRepository) SetStatus(ctx context.Context, id string, status project.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE projects SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to set project status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// AddMember implements project.ProjectRepository.
func (r *projectRepository) AddMember(ctx context.Context, projectID, userID string) error {
	q := GetQuerier(ctx, r.db)

	// Unique (project_id, user_id) makes re-adding a no-op.
	query := `
		INSERT INTO project_members (id, project_id, user_id)
		VALUES (gen_random_uuid(), $1, $2)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, projectID, userID); err != nil {
		return fmt.Errorf("failed to add project member: %w", err)
	}
	return nil
}

// RemoveMember implements project.ProjectRepository.
func (r *projectRepository) RemoveMember(ctx context.Context, memberID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM project_members WHERE id = $1`, memberID); err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}
	return nil
}

// ListMembers implements project.ProjectRepository.
func (r *projectRepository) ListMembers(ctx context.Context, projectID string) ([]project.Member, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, project_id, user_id FROM project_members WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []project.Member
	for rows.Next() {
		var m project.Member
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// IsMember implements project.ProjectRepository.
func (r *projectRepository) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2)`,
		projectID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project membership: %w", err)
	}
	return exists, nil
}
