package services

import "errors"

// Define common service errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("conflict") // e.g., duplicate name, referenced row
	ErrValidation    = errors.New("validation failed")
	ErrUnknownSkill  = errors.New("skill is not in the catalog")
	ErrSessionExists = errors.New("session already exists")
)
