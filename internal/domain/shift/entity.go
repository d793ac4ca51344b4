package shift

import "time"

// Shift is a working interval of one employee. A nil EndTime means the
// shift is still open.
type Shift struct {
	ID         int64
	EmployeeID int64
	StartTime  time.Time
	EndTime    *time.Time
}

// OpenAt reports whether the shift is still running at now.
func (s Shift) OpenAt(now time.Time) bool {
	return s.EndTime == nil || s.EndTime.After(now)
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)
