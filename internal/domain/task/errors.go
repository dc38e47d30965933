package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrForbidden    = errors.New("no access to this task")
)
