package penalty

import "context"

type PenaltyRepository interface {
	Create(ctx context.Context, p Penalty) (Penalty, error)
	CountAll(ctx context.Context) (int64, error)
	// ListByUserOrEmployee returns every penalty with user_id = userID or
	// employee_id = employeeID, ordered by id.
	ListByUserOrEmployee(ctx context.Context, userID, employeeID int64) ([]Penalty, error)
}
