package attendance

import (
	"context"
	"time"
)

// AttendanceService defines check-in/check-out behaviour.
type AttendanceService interface {
	// CheckIn records the first check-in of the day. Repeated calls are
	// no-ops: the first written time wins.
	CheckIn(ctx context.Context, userID string, day time.Time, now time.Time) (AttendanceResponse, error)

	// CheckOut records the check-out, overwriting any previous value.
	// Checking out without a prior check-in creates a record with equal
	// check-in and check-out.
	CheckOut(ctx context.Context, userID string, day time.Time, now time.Time) (AttendanceResponse, error)

	GetForDay(ctx context.Context, userID string, day time.Time) (*AttendanceResponse, error)
}
