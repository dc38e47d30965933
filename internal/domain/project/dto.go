package project

import (
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	IsProject      bool    `json:"is_project"`
	PlannedHours   float64 `json:"planned_hours"`
	OwnerID        *string `json:"owner_id,omitempty"`
	PlannedDueDate *string `json:"planned_due_date,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.PlannedHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "planned_hours", Message: "planned_hours must not be negative"})
	}
	if r.PlannedDueDate != nil {
		if _, ok := validator.IsValidDate(*r.PlannedDueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "planned_due_date", Message: "planned_due_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	IsProject      bool    `json:"is_project"`
	Status         string  `json:"status"`
	PlannedHours   float64 `json:"planned_hours"`
	OwnerID        *string `json:"owner_id,omitempty"`
	DateCreated    string  `json:"date_created"`
	PlannedDueDate *string `json:"planned_due_date,omitempty"`
}

func ToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		IsProject:    p.IsProject,
		Status:       string(p.Status),
		PlannedHours: p.PlannedHours,
		OwnerID:      p.OwnerID,
		DateCreated:  p.DateCreated.Format("2006-01-02"),
	}
	if p.PlannedDueDate != nil {
		due := p.PlannedDueDate.Format("2006-01-02")
		resp.PlannedDueDate = &due
	}
	return resp
}

func ToResponses(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToResponse(p))
	}
	return out
}
