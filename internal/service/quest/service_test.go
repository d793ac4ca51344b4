package quest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/item"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/repository/memory"
)

var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func newTestService(store *memory.Store) quest.QuestService {
	return NewQuestService(
		store,
		store.Quests(),
		store.Items(),
		store.Users(),
		store.Employees(),
		1,
		func() time.Time { return testNow },
	)
}

// addWaiter seeds an employee and its login account sharing one iiko id.
func addWaiter(store *memory.Store, name string, orgID *int64) (employee.Employee, user.User) {
	iiko := fmt.Sprintf("iiko-%s", name)
	emp := store.AddEmployee(employee.Employee{
		IIKOID:                  iiko,
		Name:                    ptr(name),
		MainRoleCode:            ptr("waiter"),
		PreferredOrganizationID: orgID,
	})
	u := store.AddUser(user.User{IIKOID: ptr(iiko), Login: name, Role: user.RoleWaiter})
	return emp, u
}

func TestListEmployeeQuests(t *testing.T) {
	store := memory.NewStore()
	_, anna := addWaiter(store, "anna", nil)
	burger := store.AddItem(item.Item{Name: "Burger"})

	r1 := store.AddReward(quest.Reward{StartDate: at(15, 0, 0), EndDate: at(15, 23, 59), ItemID: burger.ID, EndGoal: 10, PrizeSum: decimal.NewFromInt(500)})
	r2 := store.AddReward(quest.Reward{StartDate: at(15, 0, 0), EndDate: at(15, 23, 59), ItemID: 99999, EndGoal: 4, PrizeSum: decimal.NewFromInt(100)})
	store.AddReward(quest.Reward{StartDate: at(10, 0, 0), EndDate: at(10, 23, 59), ItemID: burger.ID, EndGoal: 1})
	store.AddUserReward(quest.UserReward{RewardID: r1.ID, UserID: anna.ID, CurrentProgress: 3})
	store.AddUserReward(quest.UserReward{RewardID: r2.ID, UserID: anna.ID, CurrentProgress: 4})

	quests, err := newTestService(store).ListEmployeeQuests(context.Background(), quest.QuestFilter{
		EmployeeID: anna.ID,
		Date:       "15.03.2025",
	})
	require.NoError(t, err)
	require.Len(t, quests, 2)

	assert.Equal(t, fmt.Sprint(r1.ID), quests[0].ID)
	assert.Equal(t, quest.DefaultTitle, quests[0].Title)
	assert.Equal(t, "Sell 10 Burger", quests[0].Description)
	assert.Equal(t, 3, quests[0].Current)
	assert.Equal(t, "Burger", quests[0].Unit)
	assert.False(t, quests[0].Completed)
	assert.True(t, decimal.NewFromInt(30).Equal(quests[0].Progress))

	assert.Equal(t, quest.DefaultUnit, quests[1].Unit)
	assert.True(t, quests[1].Completed)
	assert.True(t, decimal.NewFromInt(100).Equal(quests[1].Progress))
}

func TestListEmployeeQuests_UnknownUserReturnsEmpty(t *testing.T) {
	store := memory.NewStore()
	store.AddReward(quest.Reward{StartDate: at(15, 0, 0), EndDate: at(15, 23, 59), EndGoal: 1})

	quests, err := newTestService(store).ListEmployeeQuests(context.Background(), quest.QuestFilter{EmployeeID: 4242})
	require.NoError(t, err)
	assert.Empty(t, quests)
	assert.NotNil(t, quests)
}

func TestListEmployeeQuests_NoUserRewardMeansZeroProgress(t *testing.T) {
	store := memory.NewStore()
	_, anna := addWaiter(store, "anna", nil)
	store.AddReward(quest.Reward{StartDate: at(15, 0, 0), EndDate: at(15, 23, 59), EndGoal: 0})

	quests, err := newTestService(store).ListEmployeeQuests(context.Background(), quest.QuestFilter{
		EmployeeID: anna.ID,
		Date:       "not-a-date",
	})
	require.NoError(t, err)
	require.Len(t, quests, 1)
	assert.Equal(t, 0, quests[0].Current)
	assert.True(t, quests[0].Progress.IsZero())
	// current >= end_goal holds for a zero goal
	assert.True(t, quests[0].Completed)
}

func TestGetQuestDetail_Ranking(t *testing.T) {
	store := memory.NewStore()
	empA, a := addWaiter(store, "anna", nil)
	empB, b := addWaiter(store, "boris", nil)
	empC, c := addWaiter(store, "clara", nil)
	reward := store.AddReward(quest.Reward{StartDate: at(15, 0, 0), EndDate: at(15, 23, 59), ItemID: 99999, EndGoal: 30, PrizeSum: decimal.NewFromInt(300)})

	store.AddUserReward(quest.UserReward{RewardID: reward.ID, UserID: a.ID, CurrentProgress: 10})
	store.AddUserReward(quest.UserReward{RewardID: reward.ID, UserID: b.ID, CurrentProgress: 30})
	store.AddUserReward(quest.UserReward{RewardID: reward.ID, UserID: c.ID, CurrentProgress: 30})

	detail, err := newTestService(store).GetQuestDetail(context.Background(), reward.ID, nil)
	require.NoError(t, err)

	require.Len(t, detail.EmployeeProgress, 3)
	assert.Equal(t, empB.ID, detail.EmployeeProgress[0].EmployeeID)
	assert.Equal(t, 1, detail.EmployeeProgress[0].Rank)
	assert.Equal(t, empC.ID, detail.EmployeeProgress[1].EmployeeID)
	assert.Equal(t, 2, detail.EmployeeProgress[1].Rank)
	assert.Equal(t, empA.ID, detail.EmployeeProgress[2].EmployeeID)
	assert.Equal(t, 3, detail.EmployeeProgress[2].Rank)
	assert.True(t, decimal.RequireFromString("33.33").Equal(detail.EmployeeProgress[2].Progress))

	assert.Equal(t, []string{"anna", "boris", "clara"}, detail.EmployeeNames)
	assert.Equal(t, 3, detail.TotalEmployees)
	assert.Equal(t, 2, detail.CompletedEmployees)
	assert.False(t, detail.Completed)
	// (33.33 + 100 + 100) / 3 = 77.776666..
	assert.True(t, decimal.RequireFromString("77.78").Equal(detail.Progress), detail.Progress.String())
	// round(77.78 * 30 / 100) = round(23.334)
	assert.Equal(t, 23, detail.Current)
	assert.Equal(t, "15.03.2025", detail.Date)
	assert.Equal(t, quest.DefaultUnit, detail.Unit)
}

func TestGetQuestDetail_OrganizationFilterAndUnresolved(t *testing.T) {
	store := memory.NewStore()
	org := int64(7)
	other := int64(8)
	_, a := addWaiter(store, "anna", &org)
	_, b := addWaiter(store, "boris", &other)
	orphan := store.AddUser(user.User{IIKOID: ptr("nobody"), Login: "orphan"})
	reward := store.AddReward(quest.Reward{StartDate: at(15, 0, 0), EndDate: at(15, 23, 59), EndGoal: 5})

	store.AddUserReward(quest.UserReward{RewardID: reward.ID, UserID: a.ID, CurrentProgress: 5})
	store.AddUserReward(quest.UserReward{RewardID: reward.ID, UserID: b.ID, CurrentProgress: 1})
	store.AddUserReward(quest.UserReward{RewardID: reward.ID, UserID: orphan.ID, CurrentProgress: 2})

	detail, err := newTestService(store).GetQuestDetail(context.Background(), reward.ID, &org)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.TotalEmployees)
	assert.Equal(t, []string{"anna"}, detail.EmployeeNames)
	assert.True(t, detail.Completed)
	assert.Equal(t, 5, detail.Current)
}

func TestGetQuestDetail_ZeroGoalAndEmptyRoster(t *testing.T) {
	store := memory.NewStore()
	reward := store.AddReward(quest.Reward{StartDate: at(15, 0, 0), EndDate: at(15, 23, 59), EndGoal: 0})

	detail, err := newTestService(store).GetQuestDetail(context.Background(), reward.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, detail.TotalEmployees)
	// An empty roster is not completed, even though 0 of 0 participants finished.
	assert.False(t, detail.Completed)
	assert.True(t, detail.Progress.IsZero())
	assert.Equal(t, 0, detail.Current)
	assert.Empty(t, detail.EmployeeProgress)
}

func TestGetQuestDetail_NotFound(t *testing.T) {
	_, err := newTestService(memory.NewStore()).GetQuestDetail(context.Background(), 1, nil)
	assert.ErrorIs(t, err, quest.ErrQuestNotFound)
}

func TestCreateQuest_AllWaiters(t *testing.T) {
	store := memory.NewStore()
	store.AddItem(item.Item{Name: "Cola"})
	burger := store.AddItem(item.Item{Name: "Cheese Burger"})
	_, a := addWaiter(store, "anna", nil)
	_, b := addWaiter(store, "boris", nil)
	store.AddEmployee(employee.Employee{IIKOID: "chef", Name: ptr("chef"), MainRoleCode: ptr("cook")})
	store.AddEmployee(employee.Employee{IIKOID: "iiko-deleted", MainRoleCode: ptr("Официант"), Deleted: true})

	created, err := newTestService(store).CreateQuest(context.Background(), quest.CreateQuestRequest{
		Title:  "Burgers",
		Reward: decimal.NewFromInt(1000),
		Target: 20,
		Unit:   "burger",
		Date:   "16.03.2025",
	})
	require.NoError(t, err)

	assert.Equal(t, burger.ID, created.ItemID)
	assert.Equal(t, 20, created.EndGoal)
	assert.Equal(t, at(16, 0, 0), created.StartDate)
	assert.Equal(t, 23, created.EndDate.Hour())
	assert.Equal(t, 59, created.EndDate.Second())

	rows := store.UserRewards()
	require.Len(t, rows, 2)
	assert.Equal(t, a.ID, rows[0].UserID)
	assert.Equal(t, b.ID, rows[1].UserID)
	for _, ur := range rows {
		assert.Equal(t, created.ID, ur.RewardID)
		assert.Equal(t, 0, ur.CurrentProgress)
	}
}

func TestCreateQuest_ExplicitIDs(t *testing.T) {
	store := memory.NewStore()
	empA, a := addWaiter(store, "anna", nil)
	addWaiter(store, "boris", nil)
	noUser := store.AddEmployee(employee.Employee{IIKOID: "no-account"})

	_, err := newTestService(store).CreateQuest(context.Background(), quest.CreateQuestRequest{
		Title:       "Desserts",
		Target:      3,
		Unit:        "cake",
		EmployeeIDs: []string{fmt.Sprint(empA.ID), "abc", fmt.Sprint(noUser.ID), "31337"},
	})
	require.NoError(t, err)

	rows := store.UserRewards()
	require.Len(t, rows, 1)
	assert.Equal(t, a.ID, rows[0].UserID)
}

func TestCreateQuest_ItemFallbacks(t *testing.T) {
	t.Run("first item when no name matches", func(t *testing.T) {
		store := memory.NewStore()
		first := store.AddItem(item.Item{Name: "Tea"})
		store.AddItem(item.Item{Name: "Coffee"})

		created, err := newTestService(store).CreateQuest(context.Background(), quest.CreateQuestRequest{Title: "t", Target: 1, Unit: "pizza"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, created.ItemID)
	})

	t.Run("placeholder when no items exist", func(t *testing.T) {
		// The memory store does not enforce rewards.item_id; on PostgreSQL a
		// missing placeholder row surfaces as item.ErrItemNotFound.
		store := memory.NewStore()

		created, err := newTestService(store).CreateQuest(context.Background(), quest.CreateQuestRequest{Title: "t", Target: 1, Unit: "pizza"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, created.ItemID)
	})
}

func TestCreateQuest_NoParticipantsStillCreatesReward(t *testing.T) {
	store := memory.NewStore()
	org := int64(3)
	other := int64(4)
	addWaiter(store, "anna", &other)

	created, err := newTestService(store).CreateQuest(context.Background(), quest.CreateQuestRequest{
		Title:          "Quiet day",
		Target:         1,
		Unit:           "units",
		OrganizationID: &org,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, store.Rewards(), 1)
	assert.Empty(t, store.UserRewards())
}

func TestCreateQuest_RollbackOnEnrollFailure(t *testing.T) {
	store := memory.NewStore()
	addWaiter(store, "anna", nil)
	store.FailOn["quest.CreateUserReward"] = true

	_, err := newTestService(store).CreateQuest(context.Background(), quest.CreateQuestRequest{Title: "t", Target: 1, Unit: "u"})
	require.ErrorIs(t, err, memory.ErrInjected)

	assert.Empty(t, store.Rewards())
	assert.Empty(t, store.UserRewards())
}

func TestCreateQuest_Validation(t *testing.T) {
	store := memory.NewStore()

	_, err := newTestService(store).CreateQuest(context.Background(), quest.CreateQuestRequest{Title: "", Target: 0, Unit: " "})
	require.Error(t, err)
	assert.Empty(t, store.Rewards())
}
