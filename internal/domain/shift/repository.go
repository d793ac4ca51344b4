package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	// ListStartedBetween returns shifts with start_time in [from, to],
	// optionally narrowed to one employee.
	ListStartedBetween(ctx context.Context, from, to time.Time, employeeID *int64) ([]Shift, error)
	// GetLatestStartedBetween returns the employee's shift with the latest
	// start_time in [from, to]; ties go to the higher id.
	GetLatestStartedBetween(ctx context.Context, employeeID int64, from, to time.Time) (Shift, error)
	UpdateStartTime(ctx context.Context, id int64, startTime time.Time) error
	// CountOpen counts shifts that have started and are still open at now.
	CountOpen(ctx context.Context, now time.Time) (int64, error)
}
