package response

import (
	"errors"
	"net/http"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/attendance"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/auth"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/leave"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/project"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/task"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/policy"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Policy errors
	case errors.Is(err, policy.ErrInvalidHours):
		BadRequest(w, "Hours must be a positive number", nil)
	case errors.Is(err, policy.ErrInvalidDate):
		BadRequest(w, "Date must be YYYY-MM-DD", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Administrator access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrForbidden):
		Forbidden(w, "No access to this time entry")
	case errors.Is(err, timesheet.ErrEntryLocked):
		Conflict(w, "Time entry is locked")
	case errors.Is(err, timesheet.ErrTaskForbidden):
		Forbidden(w, "Task is not assigned to you")
	case errors.Is(err, timesheet.ErrProjectForbidden):
		Forbidden(w, "Project is not in your allowed set")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrForbidden):
		Forbidden(w, "No access to this task")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found or not active")
	case errors.Is(err, project.ErrCodeExists):
		Conflict(w, "Project code already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "date_from must not be after date_to", nil)
	case errors.Is(err, leave.ErrLeaveExists):
		Conflict(w, "A leave request already covers this date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
