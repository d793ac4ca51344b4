package quest

import "errors"

var (
	ErrQuestNotFound      = errors.New("quest not found")
	ErrUserRewardNotFound = errors.New("quest participant not found")
)
