package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/order"
	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/salary"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/utils"
)

const noQuestDescription = "Fixed amount bonus"

var hundred = decimal.NewFromInt(100)

type SalaryServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	orderRepo      order.OrderRepository
	penaltyRepo    penalty.PenaltyRepository
	userSalaryRepo salary.UserSalaryRepository
	questService   quest.QuestService
	bonusRules     []salary.BonusRule
	now            func() time.Time
}

func NewSalaryService(
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	orderRepo order.OrderRepository,
	penaltyRepo penalty.PenaltyRepository,
	userSalaryRepo salary.UserSalaryRepository,
	questService quest.QuestService,
	bonusRules []salary.BonusRule,
	now func() time.Time,
) salary.SalaryService {
	if now == nil {
		now = time.Now
	}
	if bonusRules == nil {
		bonusRules = salary.DefaultBonusRules()
	}
	return &SalaryServiceImpl{
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		orderRepo:      orderRepo,
		penaltyRepo:    penaltyRepo,
		userSalaryRepo: userSalaryRepo,
		questService:   questService,
		bonusRules:     bonusRules,
		now:            now,
	}
}

// CalculateSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) CalculateSalary(ctx context.Context, req salary.SalaryRequest) (salary.SalaryResponse, error) {
	day, ok := utils.ParseDate(req.Date, s.now().Location())
	if !ok {
		return salary.SalaryResponse{}, salary.ErrSalaryNotFound
	}
	from, to := utils.DayBounds(day)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.IIKOID == "" {
		return salary.SalaryResponse{}, salary.ErrSalaryNotFound
	}
	u, err := s.userRepo.GetByIIKOID(ctx, emp.IIKOID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	userID := u.ID
	orders, err := s.orderRepo.Summarize(ctx, order.Filter{
		UserID:         &userID,
		OrganizationID: req.OrganizationID,
		From:           from,
		To:             to,
	})
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to summarize orders: %w", err)
	}

	percentage, err := s.percentageFor(ctx, u.ID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	baseSalary := orders.Total.Mul(percentage).Div(hundred)

	reportDate := utils.FormatDate(day)

	penalties, err := s.penaltyRepo.ListByUserOrEmployee(ctx, u.ID, req.EmployeeID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to list penalties: %w", err)
	}
	totalPenalties := decimal.Zero
	penaltyItems := make([]salary.PenaltyItem, 0, len(penalties))
	for _, p := range penalties {
		totalPenalties = totalPenalties.Add(p.PenaltySum)
		penaltyItems = append(penaltyItems, salary.PenaltyItem{
			Reason: p.Reason(),
			Amount: p.PenaltySum,
			Date:   reportDate,
		})
	}

	quests, err := s.questService.ListEmployeeQuests(ctx, quest.QuestFilter{
		EmployeeID:     req.EmployeeID,
		Date:           req.Date,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to list quests: %w", err)
	}
	questBonus := decimal.Zero
	questDescription := ""
	questItems := make([]salary.QuestRewardItem, 0)
	for _, q := range quests {
		if !q.Completed {
			continue
		}
		questBonus = questBonus.Add(q.Reward)
		if questDescription == "" {
			questDescription = "Quest completion bonus: " + q.Description
		}
		questItems = append(questItems, salary.QuestRewardItem{
			QuestID:   q.ID,
			QuestName: q.Description,
			Reward:    q.Reward,
		})
	}
	if questDescription == "" {
		questDescription = noQuestDescription
	}

	totalBonuses := decimal.Zero
	bonusItems := make([]salary.BonusItem, 0, len(s.bonusRules))
	for _, rule := range s.bonusRules {
		item, ok := rule.Apply(orders.Total)
		if !ok {
			continue
		}
		totalBonuses = totalBonuses.Add(item.Amount)
		bonusItems = append(bonusItems, item)
	}

	total := baseSalary.Add(totalBonuses).Add(questBonus).Sub(totalPenalties)

	return salary.SalaryResponse{
		Date:             reportDate,
		TablesCompleted:  orders.Count,
		TotalRevenue:     orders.Total,
		Salary:           baseSalary,
		SalaryPercentage: percentage,
		Bonuses:          totalBonuses,
		QuestBonus:       questBonus,
		QuestDescription: questDescription,
		Penalties:        totalPenalties,
		TotalEarnings:    total,
		Breakdown: salary.Breakdown{
			BaseSalary:   baseSalary,
			Percentage:   percentage,
			Bonuses:      bonusItems,
			Penalties:    penaltyItems,
			QuestRewards: questItems,
		},
		Quests: quests,
	}, nil
}

// percentageFor reads the user's salary setting but always returns the
// default rate; applying per-user rates is not enabled yet.
func (s *SalaryServiceImpl) percentageFor(ctx context.Context, userID int64) (decimal.Decimal, error) {
	setting, err := s.userSalaryRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		slog.Debug("User salary setting ignored, default percentage applied",
			"user_id", userID, "configured", setting.Salary, "applied", salary.DefaultPercentage)
	case errors.Is(err, salary.ErrUserSalaryNotFound):
	default:
		return decimal.Zero, fmt.Errorf("failed to get user salary: %w", err)
	}
	return decimal.NewFromInt(salary.DefaultPercentage), nil
}
