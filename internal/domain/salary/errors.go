package salary

import "errors"

var (
	ErrSalaryNotFound     = errors.New("waiter not found or invalid date format")
	ErrUserSalaryNotFound = errors.New("user salary setting not found")
)
