package salary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/order"
	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/salary"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/repository/memory"
	questservice "github.com/restoops/staff-backend-go/internal/service/quest"
)

var testNow = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func newTestService(store *memory.Store) salary.SalaryService {
	clock := func() time.Time { return testNow }
	quests := questservice.NewQuestService(store, store.Quests(), store.Items(), store.Users(), store.Employees(), 1, clock)
	return NewSalaryService(
		store.Employees(),
		store.Users(),
		store.Orders(),
		store.PenaltyRepo(),
		store.UserSalaries(),
		quests,
		nil,
		clock,
	)
}

// seedWaiter links employee and user through one iiko id. Both get id 10 so
// the quest lookup, which treats the path id as a user id, finds the user.
func seedWaiter(store *memory.Store) (employee.Employee, user.User) {
	emp := store.AddEmployee(employee.Employee{ID: 10, IIKOID: "iiko-10", Name: ptr("Anna")})
	u := store.AddUser(user.User{ID: 10, IIKOID: ptr("iiko-10"), Login: "anna", Role: user.RoleWaiter})
	return emp, u
}

func TestCalculateSalary_FullReport(t *testing.T) {
	store := memory.NewStore()
	emp, u := seedWaiter(store)

	store.AddOrder(order.Order{UserID: ptr(u.ID), SumOrder: decimal.NewFromInt(250000), TimeOrder: at(15, 12)})
	store.AddOrder(order.Order{UserID: ptr(u.ID), SumOrder: decimal.NewFromInt(350000), TimeOrder: at(15, 18)})
	store.AddOrder(order.Order{UserID: ptr(u.ID), SumOrder: decimal.NewFromInt(999), TimeOrder: at(15, 19), Deleted: true})
	store.AddOrder(order.Order{UserID: ptr(u.ID), SumOrder: decimal.NewFromInt(999), TimeOrder: at(14, 19)})

	store.AddPenalty(penalty.Penalty{EmployeeID: ptr(emp.ID), PenaltySum: decimal.NewFromInt(5000), PenaltyDate: at(1, 9)})

	reward := store.AddReward(quest.Reward{StartDate: at(15, 0), EndDate: at(15, 23), EndGoal: 10, PrizeSum: decimal.NewFromInt(15000)})
	store.AddUserReward(quest.UserReward{RewardID: reward.ID, UserID: u.ID, CurrentProgress: 12})
	open := store.AddReward(quest.Reward{StartDate: at(15, 0), EndDate: at(15, 23), EndGoal: 50, PrizeSum: decimal.NewFromInt(9000)})
	store.AddUserReward(quest.UserReward{RewardID: open.ID, UserID: u.ID, CurrentProgress: 1})

	store.AddUserSalary(salary.UserSalary{UserID: u.ID, Salary: 12})

	report, err := newTestService(store).CalculateSalary(context.Background(), salary.SalaryRequest{
		EmployeeID: emp.ID,
		Date:       "15.03.2025",
	})
	require.NoError(t, err)

	assert.Equal(t, "15.03.2025", report.Date)
	assert.EqualValues(t, 2, report.TablesCompleted)
	assert.True(t, decimal.NewFromInt(600000).Equal(report.TotalRevenue))
	assert.True(t, decimal.NewFromInt(5).Equal(report.SalaryPercentage))
	assert.True(t, decimal.NewFromInt(30000).Equal(report.Salary))
	assert.True(t, decimal.NewFromInt(6000).Equal(report.Bonuses))
	assert.True(t, decimal.NewFromInt(15000).Equal(report.QuestBonus))
	assert.True(t, decimal.NewFromInt(5000).Equal(report.Penalties))
	assert.True(t, decimal.NewFromInt(46000).Equal(report.TotalEarnings), report.TotalEarnings.String())
	assert.Equal(t, "Quest completion bonus: Sell 10 units", report.QuestDescription)

	require.Len(t, report.Breakdown.Bonuses, 1)
	assert.Equal(t, "Bonus for excellent work", report.Breakdown.Bonuses[0].Description)
	require.Len(t, report.Breakdown.Penalties, 1)
	assert.Equal(t, "Fine", report.Breakdown.Penalties[0].Reason)
	assert.Equal(t, "15.03.2025", report.Breakdown.Penalties[0].Date)
	require.Len(t, report.Breakdown.QuestRewards, 1)
	assert.Equal(t, "Sell 10 units", report.Breakdown.QuestRewards[0].QuestName)
	assert.Equal(t, report.Quests[0].Description, report.Breakdown.QuestRewards[0].QuestName)
	assert.Len(t, report.Quests, 2)
}

func TestCalculateSalary_NoBonusNoQuestNegativeTotal(t *testing.T) {
	store := memory.NewStore()
	emp, u := seedWaiter(store)
	store.AddOrder(order.Order{UserID: ptr(u.ID), SumOrder: decimal.NewFromInt(10000), TimeOrder: at(15, 12)})
	store.AddPenalty(penalty.Penalty{UserID: ptr(u.ID), PenaltySum: decimal.NewFromInt(800), Description: ptr("Late")})
	store.AddPenalty(penalty.Penalty{UserID: ptr(u.ID), EmployeeID: ptr(emp.ID), PenaltySum: decimal.NewFromInt(200)})

	report, err := newTestService(store).CalculateSalary(context.Background(), salary.SalaryRequest{
		EmployeeID: emp.ID,
		Date:       "15.03.2025",
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(500).Equal(report.Salary))
	assert.True(t, report.Bonuses.IsZero())
	assert.Empty(t, report.Breakdown.Bonuses)
	assert.Equal(t, "Fixed amount bonus", report.QuestDescription)
	assert.True(t, decimal.NewFromInt(1000).Equal(report.Penalties))
	assert.Equal(t, "Late", report.Breakdown.Penalties[0].Reason)
	assert.True(t, decimal.NewFromInt(-500).Equal(report.TotalEarnings))
	assert.NotNil(t, report.Breakdown.QuestRewards)
}

func TestCalculateSalary_RevenueAtThresholdHasNoBonus(t *testing.T) {
	store := memory.NewStore()
	emp, u := seedWaiter(store)
	store.AddOrder(order.Order{UserID: ptr(u.ID), SumOrder: decimal.NewFromInt(500000), TimeOrder: at(15, 12)})

	report, err := newTestService(store).CalculateSalary(context.Background(), salary.SalaryRequest{EmployeeID: emp.ID, Date: "15.03.2025"})
	require.NoError(t, err)
	assert.True(t, report.Bonuses.IsZero())
}

func TestCalculateSalary_OrganizationFilter(t *testing.T) {
	store := memory.NewStore()
	emp, u := seedWaiter(store)
	store.AddOrder(order.Order{UserID: ptr(u.ID), OrganizationID: ptr(int64(1)), SumOrder: decimal.NewFromInt(1000), TimeOrder: at(15, 12)})
	store.AddOrder(order.Order{UserID: ptr(u.ID), OrganizationID: ptr(int64(2)), SumOrder: decimal.NewFromInt(3000), TimeOrder: at(15, 13)})

	report, err := newTestService(store).CalculateSalary(context.Background(), salary.SalaryRequest{
		EmployeeID:     emp.ID,
		Date:           "15.03.2025",
		OrganizationID: ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.TablesCompleted)
	assert.True(t, decimal.NewFromInt(3000).Equal(report.TotalRevenue))
}

func TestCalculateSalary_NotFound(t *testing.T) {
	tests := []struct {
		name string
		seed func(*memory.Store) int64
		date string
	}{
		{
			name: "malformed date",
			seed: func(s *memory.Store) int64 { emp, _ := seedWaiter(s); return emp.ID },
			date: "2025-03-15",
		},
		{
			name: "empty date",
			seed: func(s *memory.Store) int64 { emp, _ := seedWaiter(s); return emp.ID },
			date: "",
		},
		{
			name: "unknown employee",
			seed: func(*memory.Store) int64 { return 404 },
			date: "15.03.2025",
		},
		{
			name: "employee without user",
			seed: func(s *memory.Store) int64 {
				return s.AddEmployee(employee.Employee{IIKOID: "lonely"}).ID
			},
			date: "15.03.2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			id := tt.seed(store)

			_, err := newTestService(store).CalculateSalary(context.Background(), salary.SalaryRequest{EmployeeID: id, Date: tt.date})
			assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
		})
	}
}
