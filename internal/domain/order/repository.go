package order

import (
	"context"
	"time"
)

// Filter selects non-deleted orders with time_order in [From, To].
type Filter struct {
	UserID         *int64
	OrganizationID *int64
	From           time.Time
	To             time.Time
}

type OrderRepository interface {
	Summarize(ctx context.Context, filter Filter) (Summary, error)
}
