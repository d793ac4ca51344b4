package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/restoops/staff-backend-go/internal/domain/item"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

type questRepositoryImpl struct {
	db *database.DB
}

func NewQuestRepository(db *database.DB) quest.QuestRepository {
	return &questRepositoryImpl{db: db}
}

func scanReward(row pgx.Row) (quest.Reward, error) {
	var r quest.Reward
	err := row.Scan(&r.ID, &r.CreateDate, &r.StartDate, &r.EndDate, &r.ItemID, &r.EndGoal, &r.PrizeSum)
	return r, err
}

// CreateReward implements quest.QuestRepository.
func (r *questRepositoryImpl) CreateReward(ctx context.Context, reward quest.Reward) (quest.Reward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rewards (create_date, start_date, end_date, item_id, end_goal, prize_sum)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, create_date, start_date, end_date, item_id, end_goal, prize_sum`

	created, err := scanReward(q.QueryRow(ctx, query,
		reward.CreateDate,
		reward.StartDate,
		reward.EndDate,
		reward.ItemID,
		reward.EndGoal,
		reward.PrizeSum,
	))
	if err != nil {
		if isForeignKeyViolation(err, "rewards_item_id_fkey") {
			return quest.Reward{}, item.ErrItemNotFound
		}
		return quest.Reward{}, fmt.Errorf("failed to create reward: %w", err)
	}
	return created, nil
}

// CreateUserReward implements quest.QuestRepository.
func (r *questRepositoryImpl) CreateUserReward(ctx context.Context, ur quest.UserReward) (quest.UserReward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_reward (reward_id, user_id, current_progress)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := q.QueryRow(ctx, query, ur.RewardID, ur.UserID, ur.CurrentProgress).Scan(&ur.ID); err != nil {
		switch {
		case isForeignKeyViolation(err, "user_reward_reward_id_fkey"):
			return quest.UserReward{}, quest.ErrQuestNotFound
		case isForeignKeyViolation(err, "user_reward_user_id_fkey"):
			return quest.UserReward{}, user.ErrUserNotFound
		}
		return quest.UserReward{}, fmt.Errorf("failed to create user reward: %w", err)
	}
	return ur, nil
}

// GetRewardByID implements quest.QuestRepository.
func (r *questRepositoryImpl) GetRewardByID(ctx context.Context, id int64) (quest.Reward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, create_date, start_date, end_date, item_id, end_goal, prize_sum
		FROM rewards
		WHERE id = $1`

	reward, err := scanReward(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quest.Reward{}, quest.ErrQuestNotFound
		}
		return quest.Reward{}, fmt.Errorf("failed to get reward: %w", err)
	}
	return reward, nil
}

// ListRewardsOverlapping implements quest.QuestRepository.
func (r *questRepositoryImpl) ListRewardsOverlapping(ctx context.Context, from, to time.Time) ([]quest.Reward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, create_date, start_date, end_date, item_id, end_goal, prize_sum
		FROM rewards
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY id`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	defer rows.Close()

	var rewards []quest.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reward: %w", err)
		}
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rewards: %w", err)
	}
	return rewards, nil
}

// CountRewardsOverlapping implements quest.QuestRepository.
func (r *questRepositoryImpl) CountRewardsOverlapping(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM rewards
		WHERE start_date <= $2 AND end_date >= $1`, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rewards: %w", err)
	}
	return count, nil
}

// GetUserReward implements quest.QuestRepository.
func (r *questRepositoryImpl) GetUserReward(ctx context.Context, rewardID, userID int64) (quest.UserReward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, reward_id, user_id, current_progress
		FROM user_reward
		WHERE reward_id = $1 AND user_id = $2
		ORDER BY id
		LIMIT 1`

	var ur quest.UserReward
	err := q.QueryRow(ctx, query, rewardID, userID).Scan(&ur.ID, &ur.RewardID, &ur.UserID, &ur.CurrentProgress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quest.UserReward{}, quest.ErrUserRewardNotFound
		}
		return quest.UserReward{}, fmt.Errorf("failed to get user reward: %w", err)
	}
	return ur, nil
}

// ListUserRewardsByReward implements quest.QuestRepository.
func (r *questRepositoryImpl) ListUserRewardsByReward(ctx context.Context, rewardID int64) ([]quest.UserReward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, reward_id, user_id, current_progress
		FROM user_reward
		WHERE reward_id = $1
		ORDER BY id`

	rows, err := q.Query(ctx, query, rewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user rewards: %w", err)
	}
	defer rows.Close()

	var participants []quest.UserReward
	for rows.Next() {
		var ur quest.UserReward
		if err := rows.Scan(&ur.ID, &ur.RewardID, &ur.UserID, &ur.CurrentProgress); err != nil {
			return nil, fmt.Errorf("failed to scan user reward: %w", err)
		}
		participants = append(participants, ur)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rewards: %w", err)
	}
	return participants, nil
}
