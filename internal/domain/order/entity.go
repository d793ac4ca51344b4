package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a closed POS check. The table is written by the sales sync and
// only read here.
type Order struct {
	ID             int64
	UserID         *int64
	OrganizationID *int64
	SumOrder       decimal.Decimal
	TimeOrder      time.Time
	Deleted        bool
}

// Summary aggregates the non-deleted orders matched by a Filter.
type Summary struct {
	Count int64
	Total decimal.Decimal
}
