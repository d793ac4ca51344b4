package salary

import (
	"github.com/shopspring/decimal"
)

// BonusRule computes one bonus line from the day's revenue. ok is false
// when the rule does not apply.
type BonusRule interface {
	Apply(revenue decimal.Decimal) (item BonusItem, ok bool)
}

// PerformanceBonus pays Rate percent of revenue once revenue exceeds Threshold.
type PerformanceBonus struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

func (b PerformanceBonus) Apply(revenue decimal.Decimal) (BonusItem, bool) {
	if !revenue.GreaterThan(b.Threshold) {
		return BonusItem{}, false
	}
	return BonusItem{
		Type:        "performance",
		Amount:      revenue.Mul(b.Rate).Div(decimal.NewFromInt(100)),
		Description: "Bonus for excellent work",
	}, true
}

// DefaultBonusRules is the bonus schedule applied by the calculator.
func DefaultBonusRules() []BonusRule {
	return []BonusRule{
		PerformanceBonus{
			Threshold: decimal.NewFromInt(500000),
			Rate:      decimal.NewFromInt(1),
		},
	}
}
