package attendance

import "time"

// Attendance is one per-user, per-day check-in/check-out record.
// CheckIn is written at most once per day; CheckOut may be overwritten.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	CreatedAt time.Time
}
