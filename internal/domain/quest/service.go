package quest

import "context"

type QuestService interface {
	// ListEmployeeQuests treats EmployeeID as a User id.
	ListEmployeeQuests(ctx context.Context, filter QuestFilter) ([]QuestResponse, error)
	GetQuestDetail(ctx context.Context, questID int64, organizationID *int64) (QuestDetailResponse, error)
	CreateQuest(ctx context.Context, req CreateQuestRequest) (Reward, error)
}
