package task

import "time"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusOnPause    Status = "on_pause"
	StatusWaiting    Status = "waiting"
	StatusDone       Status = "done"
	StatusCanceled   Status = "canceled"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// StatusLabels and PriorityLabels map stored tokens to display text.
// Stored tokens are stable wire values and must not change.
var StatusLabels = map[Status]string{
	StatusInProgress: "In progress",
	StatusOnPause:    "On pause",
	StatusWaiting:    "Waiting",
	StatusDone:       "Done",
	StatusCanceled:   "Canceled",
}

var PriorityLabels = map[Priority]string{
	PriorityLow:      "Low",
	PriorityMedium:   "Medium",
	PriorityHigh:     "High",
	PriorityCritical: "Critical",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

func (p Priority) Valid() bool {
	_, ok := PriorityLabels[p]
	return ok
}

type Task struct {
	ID              string
	Title           string
	Description     string
	Status          Status
	Priority        Priority
	PercentComplete int
	StartDate       *time.Time
	DueDate         *time.Time
	ProjectID       *string
	AssigneeID      string
	CreatedByID     string
	Approved        bool
	CreatedAt       time.Time

	// DTO / Join
	AssigneeName *string
	ProjectCode  *string
}

// Comment is an audit record attached to a task on status updates.
type Comment struct {
	ID        string
	TaskID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}
