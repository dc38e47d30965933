package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/leave"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `id, user_id, type, date_from, date_to, status, approver_id, comment, created_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var r leave.LeaveRequest
	err := row.Scan(
		&r.ID, &r.UserID, &r.Type, &r.DateFrom, &r.DateTo,
		&r.Status, &r.ApproverID, &r.Comment, &r.CreatedAt,
	)
	return r, err
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (id, user_id, type, date_from, date_to, status, comment)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		r.UserID, r.Type, r.DateFrom, r.DateTo, r.Status, r.Comment,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return r, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	r, err := scanLeaveRequest(q.QueryRow(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return r, nil
}

func (l *leaveRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		r, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// ListByUser implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return l.list(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
}

// ListPending implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return l.list(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE status = 'pending' ORDER BY created_at DESC`)
}

// ListOverlapping implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListOverlapping(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	return l.list(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests
		 WHERE user_id = $1 AND date_from <= $3 AND date_to >= $2`,
		userID, from, to)
}

// HasCovering implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) HasCovering(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, l.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE user_id = $1 AND status <> 'rejected' AND date_from <= $2 AND date_to >= $2
		)`, userID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check covering leave request: %w", err)
	}
	return exists, nil
}

// SetDecision implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) SetDecision(ctx context.Context, id string, status leave.Status, approverID string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_requests SET status = $2, approver_id = $3 WHERE id = $1`,
		id, status, approverID)
	if err != nil {
		return fmt.Errorf("failed to set leave decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// UpdateRange implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) UpdateRange(ctx context.Context, id string, from, to time.Time) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_requests SET date_from = $2, date_to = $3 WHERE id = $1`,
		id, from, to)
	if err != nil {
		return fmt.Errorf("failed to update leave range: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
