package quest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/item"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
	"github.com/restoops/staff-backend-go/internal/pkg/utils"
)

type QuestServiceImpl struct {
	db             database.Transactor
	questRepo      quest.QuestRepository
	itemRepo       item.ItemRepository
	userRepo       user.UserRepository
	employeeRepo   employee.EmployeeRepository
	fallbackItemID int64
	now            func() time.Time
}

func NewQuestService(
	db database.Transactor,
	questRepo quest.QuestRepository,
	itemRepo item.ItemRepository,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	fallbackItemID int64,
	now func() time.Time,
) quest.QuestService {
	if now == nil {
		now = time.Now
	}
	return &QuestServiceImpl{
		db:             db,
		questRepo:      questRepo,
		itemRepo:       itemRepo,
		userRepo:       userRepo,
		employeeRepo:   employeeRepo,
		fallbackItemID: fallbackItemID,
		now:            now,
	}
}

// unitFor returns the item name used as the quest unit.
func (s *QuestServiceImpl) unitFor(ctx context.Context, itemID int64) (string, error) {
	it, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			return quest.DefaultUnit, nil
		}
		return "", fmt.Errorf("failed to get item: %w", err)
	}
	if it.Name == "" {
		return quest.DefaultUnit, nil
	}
	return it.Name, nil
}

// ListEmployeeQuests implements quest.QuestService.
func (s *QuestServiceImpl) ListEmployeeQuests(ctx context.Context, filter quest.QuestFilter) ([]quest.QuestResponse, error) {
	day := utils.DateOrToday(filter.Date, s.now())
	from, to := utils.DayBounds(day)

	// The path id addresses the login account directly.
	u, err := s.userRepo.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return []quest.QuestResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	rewards, err := s.questRepo.ListRewardsOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	quests := make([]quest.QuestResponse, 0, len(rewards))
	for _, reward := range rewards {
		current := 0
		ur, err := s.questRepo.GetUserReward(ctx, reward.ID, u.ID)
		switch {
		case err == nil:
			current = ur.CurrentProgress
		case errors.Is(err, quest.ErrUserRewardNotFound):
		default:
			return nil, fmt.Errorf("failed to get user reward: %w", err)
		}

		unit, err := s.unitFor(ctx, reward.ItemID)
		if err != nil {
			return nil, err
		}
		quests = append(quests, quest.NewQuestResponse(reward, unit, current))
	}
	return quests, nil
}

// GetQuestDetail implements quest.QuestService.
func (s *QuestServiceImpl) GetQuestDetail(ctx context.Context, questID int64, organizationID *int64) (quest.QuestDetailResponse, error) {
	reward, err := s.questRepo.GetRewardByID(ctx, questID)
	if err != nil {
		return quest.QuestDetailResponse{}, err
	}

	participants, err := s.questRepo.ListUserRewardsByReward(ctx, reward.ID)
	if err != nil {
		return quest.QuestDetailResponse{}, fmt.Errorf("failed to list participants: %w", err)
	}

	progress := make([]quest.EmployeeProgress, 0, len(participants))
	names := make([]string, 0, len(participants))
	completedCount := 0
	progressSum := decimal.Zero

	for _, ur := range participants {
		emp, ok, err := s.resolveParticipant(ctx, ur.UserID)
		if err != nil {
			return quest.QuestDetailResponse{}, err
		}
		if !ok {
			continue
		}
		if organizationID != nil && !emp.InOrganization(*organizationID) {
			continue
		}

		name := emp.DisplayName(quest.UnknownEmployee)
		pct := quest.ProgressPercent(ur.CurrentProgress, reward.EndGoal)
		completed := quest.IsCompleted(ur.CurrentProgress, reward.EndGoal)
		if completed {
			completedCount++
		}
		progressSum = progressSum.Add(pct)
		names = append(names, name)
		progress = append(progress, quest.EmployeeProgress{
			EmployeeID:   emp.ID,
			EmployeeName: name,
			Progress:     pct,
			Completed:    completed,
			Points:       ur.CurrentProgress,
		})
	}

	// Ties keep roster order, so the earlier participant ranks higher.
	sort.SliceStable(progress, func(i, j int) bool {
		return progress[i].Points > progress[j].Points
	})
	for i := range progress {
		progress[i].Rank = i + 1
	}

	total := len(progress)
	avg := decimal.Zero
	if total > 0 {
		avg = progressSum.Div(decimal.NewFromInt(int64(total))).Round(2)
	}
	current := avg.Mul(decimal.NewFromInt(int64(reward.EndGoal))).Div(decimal.NewFromInt(100)).Round(0).IntPart()

	unit, err := s.unitFor(ctx, reward.ItemID)
	if err != nil {
		return quest.QuestDetailResponse{}, err
	}

	view := quest.NewQuestResponse(reward, unit, int(current))
	view.Progress = avg
	view.Completed = total > 0 && completedCount == total

	return quest.QuestDetailResponse{
		QuestResponse:      view,
		TotalEmployees:     total,
		CompletedEmployees: completedCount,
		EmployeeNames:      names,
		Date:               utils.FormatDate(reward.StartDate.In(s.now().Location())),
		EmployeeProgress:   progress,
	}, nil
}

// resolveParticipant maps a user to its employee through the shared iiko id.
// ok is false when either side is missing.
func (s *QuestServiceImpl) resolveParticipant(ctx context.Context, userID int64) (employee.Employee, bool, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.Employee{}, false, nil
		}
		return employee.Employee{}, false, fmt.Errorf("failed to get user: %w", err)
	}
	if u.IIKOID == nil || *u.IIKOID == "" {
		return employee.Employee{}, false, nil
	}

	emp, err := s.employeeRepo.GetByIIKOID(ctx, *u.IIKOID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, false, nil
		}
		return employee.Employee{}, false, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, true, nil
}

// resolveUser maps an employee to its login account. ok is false when the
// employee has no matching user.
func (s *QuestServiceImpl) resolveUser(ctx context.Context, emp employee.Employee) (user.User, bool, error) {
	if emp.IIKOID == "" {
		return user.User{}, false, nil
	}
	u, err := s.userRepo.GetByIIKOID(ctx, emp.IIKOID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("failed to get user: %w", err)
	}
	return u, true, nil
}

// resolveItemID picks the quest item: first name match on unit, then the
// first item, then the configured placeholder.
func (s *QuestServiceImpl) resolveItemID(ctx context.Context, unit string) (int64, error) {
	it, err := s.itemRepo.FindByNameContains(ctx, strings.TrimSpace(unit))
	if err == nil {
		return it.ID, nil
	}
	if !errors.Is(err, item.ErrItemNotFound) {
		return 0, fmt.Errorf("failed to find item by name: %w", err)
	}

	it, err = s.itemRepo.First(ctx)
	if err == nil {
		return it.ID, nil
	}
	if !errors.Is(err, item.ErrItemNotFound) {
		return 0, fmt.Errorf("failed to get first item: %w", err)
	}

	slog.Warn("No items available for quest, using placeholder item", "item_id", s.fallbackItemID)
	return s.fallbackItemID, nil
}

// participants resolves the users to enroll. Explicit ids that are not
// integers or do not resolve are skipped.
func (s *QuestServiceImpl) participants(ctx context.Context, req quest.CreateQuestRequest) ([]user.User, error) {
	var employees []employee.Employee

	if len(req.EmployeeIDs) > 0 {
		for _, raw := range req.EmployeeIDs {
			id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				continue
			}
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to get employee: %w", err)
			}
			employees = append(employees, emp)
		}
	} else {
		waiters, err := s.employeeRepo.ListByRoleCodes(ctx, employee.WaiterRoleCodes, req.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to list waiters: %w", err)
		}
		employees = waiters
	}

	users := make([]user.User, 0, len(employees))
	for _, emp := range employees {
		u, ok, err := s.resolveUser(ctx, emp)
		if err != nil {
			return nil, err
		}
		if ok {
			users = append(users, u)
		}
	}
	return users, nil
}

// CreateQuest implements quest.QuestService.
func (s *QuestServiceImpl) CreateQuest(ctx context.Context, req quest.CreateQuestRequest) (quest.Reward, error) {
	if err := req.Validate(); err != nil {
		return quest.Reward{}, err
	}

	now := s.now()
	day := utils.DateOrToday(req.Date, now)
	from, to := utils.DayBounds(day)

	var created quest.Reward
	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		itemID, err := s.resolveItemID(txCtx, req.Unit)
		if err != nil {
			return err
		}

		created, err = s.questRepo.CreateReward(txCtx, quest.Reward{
			CreateDate: now,
			StartDate:  from,
			EndDate:    to,
			ItemID:     itemID,
			EndGoal:    req.Target,
			PrizeSum:   req.Reward,
		})
		if err != nil {
			return fmt.Errorf("failed to create reward: %w", err)
		}

		users, err := s.participants(txCtx, req)
		if err != nil {
			return err
		}
		for _, u := range users {
			if _, err := s.questRepo.CreateUserReward(txCtx, quest.UserReward{
				RewardID:        created.ID,
				UserID:          u.ID,
				CurrentProgress: 0,
			}); err != nil {
				return fmt.Errorf("failed to enroll user %d: %w", u.ID, err)
			}
		}

		slog.Info("Quest created", "reward_id", created.ID, "item_id", itemID, "participants", len(users))
		return nil
	})
	if err != nil {
		slog.Error("CreateQuest failed", "error", err)
		return quest.Reward{}, err
	}
	return created, nil
}
