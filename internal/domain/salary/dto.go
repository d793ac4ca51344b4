package salary

import (
	"github.com/shopspring/decimal"

	"github.com/restoops/staff-backend-go/internal/domain/quest"
)

type SalaryRequest struct {
	EmployeeID     int64
	Date           string
	OrganizationID *int64
}

type BonusItem struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type PenaltyItem struct {
	Reason string          `json:"reason"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type QuestRewardItem struct {
	QuestID   string          `json:"questId"`
	QuestName string          `json:"questName"`
	Reward    decimal.Decimal `json:"reward"`
}

type Breakdown struct {
	BaseSalary   decimal.Decimal   `json:"baseSalary"`
	Percentage   decimal.Decimal   `json:"percentage"`
	Bonuses      []BonusItem       `json:"bonuses"`
	Penalties    []PenaltyItem     `json:"penalties"`
	QuestRewards []QuestRewardItem `json:"questRewards"`
}

type SalaryResponse struct {
	Date             string                `json:"date"`
	TablesCompleted  int64                 `json:"tablesCompleted"`
	TotalRevenue     decimal.Decimal       `json:"totalRevenue"`
	Salary           decimal.Decimal       `json:"salary"`
	SalaryPercentage decimal.Decimal       `json:"salaryPercentage"`
	Bonuses          decimal.Decimal       `json:"bonuses"`
	QuestBonus       decimal.Decimal       `json:"questBonus"`
	QuestDescription string                `json:"questDescription"`
	Penalties        decimal.Decimal       `json:"penalties"`
	TotalEarnings    decimal.Decimal       `json:"totalEarnings"`
	Breakdown        Breakdown             `json:"breakdown"`
	Quests           []quest.QuestResponse `json:"quests"`
}
