package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance
// records. At most one record exists per (user, date); the storage layer
// enforces this with a uniqueness constraint.
type AttendanceRepository interface {
	// Create inserts a new record. The unique (user_id, date) constraint
	// makes exactly one concurrent insert win; callers map the
	// unique-violation onto an update retry.
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)
	SetCheckIn(ctx context.Context, id string, checkIn time.Time) error
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) error
	// ListByDate returns all records for one day, used by the team view.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
