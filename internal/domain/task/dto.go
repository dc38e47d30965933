package task

import (
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	CreatorID   string  `json:"-"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssigneeID  string  `json:"assignee_id"`
	ProjectID   *string `json:"project_id,omitempty"`
	Priority    string  `json:"priority"`
	StartDate   *string `json:"start_date,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{Field: "assignee_id", Message: "assignee_id is required"})
	}
	if r.Priority != "" && !Priority(r.Priority).Valid() {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be low, medium, high or critical"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	CallerID string `json:"-"`
	TaskID   string `json:"task_id"`
	Status   string `json:"status"`
	// Percent is clamped into [0,100] by the service.
	Percent int    `json:"percent"`
	Comment string `json:"comment"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "task_id", Message: "task_id is required"})
	}
	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of in_progress, on_pause, waiting, done, canceled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveTaskRequest struct {
	ApproverID string `json:"-"`
	TaskID     string `json:"task_id"`
	Approve    bool   `json:"approve"`
}

type TaskResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	Status          string  `json:"status"`
	StatusLabel     string  `json:"status_label"`
	Priority        string  `json:"priority"`
	PriorityLabel   string  `json:"priority_label"`
	PercentComplete int     `json:"percent_complete"`
	StartDate       *string `json:"start_date,omitempty"`
	DueDate         *string `json:"due_date,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
	AssigneeID      string  `json:"assignee_id"`
	CreatedByID     string  `json:"created_by_id"`
	Approved        bool    `json:"approved"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          string(t.Status),
		StatusLabel:     StatusLabels[t.Status],
		Priority:        string(t.Priority),
		PriorityLabel:   PriorityLabels[t.Priority],
		PercentComplete: t.PercentComplete,
		ProjectID:       t.ProjectID,
		AssigneeID:      t.AssigneeID,
		CreatedByID:     t.CreatedByID,
		Approved:        t.Approved,
	}
	if t.StartDate != nil {
		s := t.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if t.DueDate != nil {
		d := t.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	return resp
}

func ToResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToResponse(t))
	}
	return out
}
