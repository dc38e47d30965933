package timesheet

import "time"

type EntryType string

const (
	EntryTypeWork EntryType = "work"
	// EntryTypeLeave marks entries generated by the leave synchronizer.
	EntryTypeLeave           EntryType = "leave"
	EntryTypeAdminAdjustment EntryType = "admin_adjustment"
)

var EntryTypeLabels = map[EntryType]string{
	EntryTypeWork:            "Work",
	EntryTypeLeave:           "Leave",
	EntryTypeAdminAdjustment: "Adjustment",
}

type TimeEntry struct {
	ID     string
	UserID string
	// TaskID and ProjectID are mutually exclusive; a task binding takes
	// precedence and clears the project.
	TaskID    *string
	ProjectID *string
	Date      time.Time
	Hours     float64
	Notes     string
	Approved  bool
	// Locked entries cannot be deleted by their owner. Set by the leave
	// synchronizer and by period close.
	Locked         bool
	EntryType      EntryType
	LeaveRequestID *string
	CreatedAt      time.Time

	// DTO / Join
	UserName *string
	TaskName *string
}
