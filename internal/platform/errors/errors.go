package apperrors

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNotFound             = errors.New("not found")
	ErrNoSnapshot           = errors.New("no syllabus snapshot for course")
)
