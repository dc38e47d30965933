package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found or not active")
	ErrCodeExists      = errors.New("project code already exists")
)
