package shift

import "errors"

var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrInvalidShiftTime  = errors.New("invalid shift time format, expected HH:MM")
	ErrInvalidEmployeeID = errors.New("invalid employee id")
)
