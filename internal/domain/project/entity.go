package project

import "time"

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

type Project struct {
	ID          string
	Code        string
	Name        string
	Description string
	// IsProject distinguishes billable projects from non-project buckets
	// (internal work, overhead). Both can carry time entries.
	IsProject      bool
	Status         Status
	PlannedHours   float64
	OwnerID        *string
	DateCreated    time.Time
	PlannedDueDate *time.Time
}

type Member struct {
	ID        string
	ProjectID string
	UserID    string
}
