package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceBonus(t *testing.T) {
	rule := DefaultBonusRules()[0]

	_, ok := rule.Apply(decimal.NewFromInt(500000))
	assert.False(t, ok, "threshold itself does not qualify")

	item, ok := rule.Apply(decimal.NewFromInt(600000))
	require.True(t, ok)
	assert.Equal(t, "performance", item.Type)
	assert.True(t, decimal.NewFromInt(6000).Equal(item.Amount))
}
