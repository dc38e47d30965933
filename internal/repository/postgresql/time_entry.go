package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `id, user_id, task_id, project_id, date, hours, notes,
	approved, locked, entry_type, leave_request_id, created_at`

func scanTimeEntry(row pgx.Row) (timesheet.TimeEntry, error) {
	var e timesheet.TimeEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.TaskID, &e.ProjectID, &e.Date, &e.Hours, &e.Notes,
		&e.Approved, &e.Locked, &e.EntryType, &e.LeaveRequestID, &e.CreatedAt,
	)
	return e, err
}

// Create implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	// The synchronizer pre-generates entry IDs; fall back to a server
	// generated one for user entries.
	query := `
		INSERT INTO time_entries (
			id, user_id, task_id, project_id, date, hours, notes,
			approved, locked, entry_type, leave_request_id
		) VALUES (
			COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.TaskID, entry.ProjectID, entry.Date, entry.Hours, entry.Notes,
		entry.Approved, entry.Locked, entry.EntryType, entry.LeaveRequestID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanTimeEntry(q.QueryRow(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}
	return e, nil
}

func (r *timeEntryRepository) list(ctx context.Context, query string, args ...interface{}) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListByUserAndDate implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) ListByUserAndDate(ctx context.Context, userID string, date time.Time) ([]timesheet.TimeEntry, error) {
	return r.list(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE user_id = $1 AND date = $2 ORDER BY created_at`,
		userID, date)
}

// ListPendingApproval implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) ListPendingApproval(ctx context.Context) ([]timesheet.TimeEntry, error) {
	return r.list(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE NOT approved ORDER BY date DESC`)
}

// ListByLeaveRequest implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) ListByLeaveRequest(ctx context.Context, leaveRequestID string) ([]timesheet.TimeEntry, error) {
	return r.list(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE leave_request_id = $1 ORDER BY date`,
		leaveRequestID)
}

// Delete implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}

// DeleteByLeaveRequest implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) DeleteByLeaveRequest(ctx context.Context, leaveRequestID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM time_entries WHERE leave_request_id = $1`, leaveRequestID); err != nil {
		return fmt.Errorf("failed to delete leave time entries: %w", err)
	}
	return nil
}

// SetApproved implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE time_entries SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return fmt.Errorf("failed to set time entry approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}

// Refresh implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) Refresh(ctx context.Context, id string, hours float64, notes string, approved, locked bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE time_entries SET hours = $2, notes = $3, approved = $4, locked = $5 WHERE id = $1`,
		id, hours, notes, approved, locked)
	if err != nil {
		return fmt.Errorf("failed to refresh time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}

// LockOlderThan implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) LockOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE time_entries SET locked = TRUE
		 WHERE NOT locked AND approved AND entry_type = 'work' AND date <= $1`,
		cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to lock closed-period entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
