package timesheet

import "errors"

var (
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrForbidden        = errors.New("no access to this time entry")
	ErrEntryLocked      = errors.New("time entry is locked")
	ErrTaskForbidden    = errors.New("task is not assigned to you")
	ErrProjectForbidden = errors.New("project is not in your allowed set")
)
