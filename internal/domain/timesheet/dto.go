package timesheet

import (
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/validator"
)

type AddEntryRequest struct {
	UserID string `json:"-"`
	// Date and Hours arrive as raw form values; the policy evaluator
	// parses and validates them.
	Date      string  `json:"date"`
	Hours     string  `json:"hours"`
	TaskID    *string `json:"task_id,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
	Notes     string  `json:"notes"`
}

func (r *AddEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	}
	if validator.IsEmpty(r.Hours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteEntryRequest struct {
	UserID  string `json:"-"`
	EntryID string `json:"entry_id"`
}

type ApproveEntryRequest struct {
	EntryID string `json:"entry_id"`
	Approve bool   `json:"approve"`
}

type TimeEntryResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	TaskID         *string `json:"task_id,omitempty"`
	ProjectID      *string `json:"project_id,omitempty"`
	Date           string  `json:"date"`
	Hours          float64 `json:"hours"`
	Notes          string  `json:"notes,omitempty"`
	Approved       bool    `json:"approved"`
	Locked         bool    `json:"locked"`
	EntryType      string  `json:"entry_type"`
	EntryTypeLabel string  `json:"entry_type_label"`
	LeaveRequestID *string `json:"leave_request_id,omitempty"`
}

func ToResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		TaskID:         e.TaskID,
		ProjectID:      e.ProjectID,
		Date:           e.Date.Format("2006-01-02"),
		Hours:          e.Hours,
		Notes:          e.Notes,
		Approved:       e.Approved,
		Locked:         e.Locked,
		EntryType:      string(e.EntryType),
		EntryTypeLabel: EntryTypeLabels[e.EntryType],
		LeaveRequestID: e.LeaveRequestID,
	}
}

func ToResponses(entries []TimeEntry) []TimeEntryResponse {
	out := make([]TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToResponse(e))
	}
	return out
}
