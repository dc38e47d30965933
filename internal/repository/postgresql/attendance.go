package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/attendance"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, date, check_in, check_out, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut, &a.CreatedAt)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, user_id, date, check_in, check_out)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, a.UserID, a.Date, a.CheckIn, a.CheckOut).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		// Unique (user_id, date) violations propagate; the service
		// retries the losing insert as an update.
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 AND date = $2`,
		userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}
	return &a, nil
}

// SetCheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckIn(ctx context.Context, id string, checkIn time.Time) error {
	q := GetQuerier(ctx, r.db)

	// First write wins: only fill a missing check_in.
	if _, err := q.Exec(ctx,
		`UPDATE attendance SET check_in = $2 WHERE id = $1 AND check_in IS NULL`,
		id, checkIn); err != nil {
		return fmt.Errorf("failed to set check-in: %w", err)
	}
	return nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`UPDATE attendance SET check_out = $2 WHERE id = $1`, id, checkOut); err != nil {
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
