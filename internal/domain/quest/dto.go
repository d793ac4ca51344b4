package quest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restoops/staff-backend-go/internal/pkg/validator"
)

type QuestFilter struct {
	EmployeeID     int64
	Date           string
	OrganizationID *int64
}

type QuestResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Reward      decimal.Decimal `json:"reward"`
	Current     int             `json:"current"`
	Target      int             `json:"target"`
	Unit        string          `json:"unit"`
	Completed   bool            `json:"completed"`
	Progress    decimal.Decimal `json:"progress"`
	ExpiresAt   string          `json:"expiresAt"`
}

type EmployeeProgress struct {
	EmployeeID   int64           `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Progress     decimal.Decimal `json:"progress"`
	Completed    bool            `json:"completed"`
	Points       int             `json:"points"`
	Rank         int             `json:"rank"`
}

type QuestDetailResponse struct {
	QuestResponse
	TotalEmployees     int                `json:"totalEmployees"`
	CompletedEmployees int                `json:"completedEmployees"`
	EmployeeNames      []string           `json:"employeeNames"`
	Date               string             `json:"date"`
	EmployeeProgress   []EmployeeProgress `json:"employeeProgress"`
}

type CreateQuestRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Reward         decimal.Decimal `json:"reward"`
	Target         int             `json:"target"`
	Unit           string          `json:"unit"`
	Date           string          `json:"date"`
	EmployeeIDs    []string        `json:"employeeIds"`
	OrganizationID *int64          `json:"organization_id"`
}

func (r *CreateQuestRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "unit is required"})
	}
	if r.Target <= 0 {
		errs = append(errs, validator.ValidationError{Field: "target", Message: "target must be greater than zero"})
	}
	if r.Reward.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "reward", Message: "reward must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateQuestResponse struct {
	Quest QuestResponse `json:"quest"`
}

// NewCreatedQuestResponse describes a freshly created reward using the
// caller's wording; no participant has progress yet.
func NewCreatedQuestResponse(req CreateQuestRequest, reward Reward) CreateQuestResponse {
	return CreateQuestResponse{
		Quest: QuestResponse{
			ID:          strconv.FormatInt(reward.ID, 10),
			Title:       req.Title,
			Description: req.Description,
			Reward:      reward.PrizeSum,
			Current:     0,
			Target:      reward.EndGoal,
			Unit:        req.Unit,
			Completed:   false,
			Progress:    decimal.Zero,
			ExpiresAt:   reward.EndDate.Format(time.RFC3339Nano),
		},
	}
}

// NewQuestResponse builds the standard quest view for one participant.
func NewQuestResponse(reward Reward, unit string, current int) QuestResponse {
	return QuestResponse{
		ID:          strconv.FormatInt(reward.ID, 10),
		Title:       DefaultTitle,
		Description: fmt.Sprintf("Sell %d %s", reward.EndGoal, unit),
		Reward:      reward.PrizeSum,
		Current:     current,
		Target:      reward.EndGoal,
		Unit:        unit,
		Completed:   IsCompleted(current, reward.EndGoal),
		Progress:    ProgressPercent(current, reward.EndGoal),
		ExpiresAt:   reward.EndDate.Format(time.RFC3339Nano),
	}
}
