package penalty

import (
	"time"

	"github.com/shopspring/decimal"
)

// Penalty is a manually entered deduction. It is linked to a User, an
// Employee or both.
type Penalty struct {
	ID          int64
	EmployeeID  *int64
	UserID      *int64
	PenaltySum  decimal.Decimal
	Description *string
	PenaltyDate time.Time
	CreatedAt   time.Time
}

// Reason returns the description, or "Fine" when it is empty.
func (p Penalty) Reason() string {
	if p.Description == nil || *p.Description == "" {
		return "Fine"
	}
	return *p.Description
}
