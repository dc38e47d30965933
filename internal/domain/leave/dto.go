package leave

import (
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/validator"
)

type RequestLeaveRequest struct {
	UserID   string `json:"-"`
	Type     string `json:"type"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Comment  string `json:"comment"`
}

func (r *RequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of remote, sick, personal, business_trip, vacation, admin_leave"})
	}
	if _, ok := validator.IsValidDate(r.DateFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date_from must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.DateTo); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_to", Message: "date_to must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuickRequestLeaveRequest creates a single-date pending request from a
// team calendar cell.
type QuickRequestLeaveRequest struct {
	UserID string `json:"-"`
	Type   string `json:"type"`
	Date   string `json:"date"`
}

func (r *QuickRequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of remote, sick, personal, business_trip, vacation, admin_leave"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	ApproverID string `json:"-"`
	LeaveID    string `json:"leave_id"`
	Approve    bool   `json:"approve"`
}

type LeaveRequestResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	TypeLabel   string  `json:"type_label"`
	DateFrom    string  `json:"date_from"`
	DateTo      string  `json:"date_to"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"status_label"`
	ApproverID  *string `json:"approver_id,omitempty"`
	Comment     string  `json:"comment,omitempty"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        string(r.Type),
		TypeLabel:   TypeLabels[r.Type],
		DateFrom:    r.DateFrom.Format("2006-01-02"),
		DateTo:      r.DateTo.Format("2006-01-02"),
		Status:      string(r.Status),
		StatusLabel: StatusLabels[r.Status],
		ApproverID:  r.ApproverID,
		Comment:     r.Comment,
	}
}

func ToResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToResponse(r))
	}
	return out
}
