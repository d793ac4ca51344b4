package quest

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reward is a quest: a sales target for one item within a time window with
// a cash prize.
type Reward struct {
	ID         int64
	CreateDate time.Time
	StartDate  time.Time
	EndDate    time.Time
	ItemID     int64
	EndGoal    int
	PrizeSum   decimal.Decimal
}

// UserReward is a participant's progress row. CurrentProgress is written
// by the sales sync only.
type UserReward struct {
	ID              int64
	RewardID        int64
	UserID          int64
	CurrentProgress int
}

const (
	DefaultTitle      = "Quest for today"
	DefaultUnit       = "units"
	UnknownEmployee   = "Unknown"
	progressPrecision = 2
)

var hundred = decimal.NewFromInt(100)

// ProgressPercent returns current/goal*100 rounded half-up to two decimals.
// A non-positive goal yields zero.
func ProgressPercent(current, goal int) decimal.Decimal {
	if goal <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(current)).
		Div(decimal.NewFromInt(int64(goal))).
		Mul(hundred).
		Round(progressPrecision)
}

// IsCompleted reports whether current has reached goal.
func IsCompleted(current, goal int) bool {
	return current >= goal
}
