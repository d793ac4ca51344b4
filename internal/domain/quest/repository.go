package quest

import (
	"context"
	"time"
)

type QuestRepository interface {
	CreateReward(ctx context.Context, r Reward) (Reward, error)
	CreateUserReward(ctx context.Context, ur UserReward) (UserReward, error)
	GetRewardByID(ctx context.Context, id int64) (Reward, error)
	// ListRewardsOverlapping returns rewards with start_date <= to and
	// end_date >= from, ordered by id.
	ListRewardsOverlapping(ctx context.Context, from, to time.Time) ([]Reward, error)
	CountRewardsOverlapping(ctx context.Context, from, to time.Time) (int64, error)
	// GetUserReward returns the first row by id for the pair.
	GetUserReward(ctx context.Context, rewardID, userID int64) (UserReward, error)
	// ListUserRewardsByReward returns participants in insertion (id) order.
	ListUserRewardsByReward(ctx context.Context, rewardID int64) ([]UserReward, error)
}
