package shift

import "context"

type ShiftService interface {
	GetShiftSummary(ctx context.Context, filter ShiftSummaryFilter) (ShiftSummaryResponse, error)
	GetEmployeeShiftStatus(ctx context.Context, employeeID int64, organizationID *int64) (ShiftStatusResponse, error)
	// UpdateShiftTime rewrites the start time of the employee's latest shift
	// opened today. Without such a shift nothing is changed.
	UpdateShiftTime(ctx context.Context, req UpdateShiftTimeRequest) error
	CountOpenShifts(ctx context.Context) (int64, error)
}
