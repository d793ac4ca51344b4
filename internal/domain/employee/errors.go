package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidLimit     = errors.New("limit must be between 0 and 1000")
)
