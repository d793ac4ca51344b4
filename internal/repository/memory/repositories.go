package memory

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/item"
	"github.com/restoops/staff-backend-go/internal/domain/order"
	"github.com/restoops/staff-backend-go/internal/domain/organization"
	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/salary"
	"github.com/restoops/staff-backend-go/internal/domain/shift"
	"github.com/restoops/staff-backend-go/internal/domain/user"
)

// ErrInjected is returned by writes listed in Store.FailOn.
var ErrInjected = errors.New("injected failure")

func (s *Store) fail(op string) error {
	if s.FailOn[op] {
		return ErrInjected
	}
	return nil
}

func (s *Store) Employees() employee.EmployeeRepository { return employeeRepo{s} }
func (s *Store) Users() user.UserRepository { return userRepo{s} }
func (s *Store) Organizations() organization.OrganizationRepository { return organizationRepo{s} }
func (s *Store) Items() item.ItemRepository { return itemRepo{s} }
func (s *Store) Orders() order.OrderRepository { return orderRepo{s} }
func (s *Store) ShiftRepo() shift.ShiftRepository { return shiftRepo{s} }
func (s *Store) PenaltyRepo() penalty.PenaltyRepository { return penaltyRepo{s} }
func (s *Store) Quests() quest.QuestRepository { return questRepo{s} }
func (s *Store) UserSalaries() salary.UserSalaryRepository { return userSalaryRepo{s} }

type employeeRepo struct{ s *Store }

func (r employeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.t.Employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r employeeRepo) GetByIIKOID(_ context.Context, iikoID string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *employee.Employee
	for i, e := range r.s.t.Employees {
		if e.IIKOID == iikoID && (found == nil || e.ID < found.ID) {
			found = &r.s.t.Employees[i]
		}
	}
	if found == nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *found, nil
}

func (r employeeRepo) ListByRoleCodes(_ context.Context, roleCodes []string, organizationID *int64) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []employee.Employee
	for _, e := range r.s.t.Employees {
		if e.Deleted || e.MainRoleCode == nil {
			continue
		}
		matched := false
		for _, code := range roleCodes {
			if *e.MainRoleCode == code {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if organizationID != nil && !e.InOrganization(*organizationID) {
			continue
		}
		out = append(out, e)
	}
	sortByID(out, func(e employee.Employee) int64 { return e.ID })
	return out, nil
}

func (r employeeRepo) List(_ context.Context, filter employee.ListFilter) ([]employee.EmployeeWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	hasShift := func(employeeID int64, match func(shift.Shift) bool) bool {
		for _, sh := range r.s.t.Shifts {
			if sh.EmployeeID == employeeID && match(sh) {
				return true
			}
		}
		return false
	}

	var out []employee.EmployeeWithDetails
	for _, e := range r.s.t.Employees {
		if e.Deleted != filter.Deleted {
			continue
		}
		if filter.Name != nil && *filter.Name != "" && (e.Name == nil || !containsFold(*e.Name, *filter.Name)) {
			continue
		}
		if filter.Login != nil && *filter.Login != "" && (e.Login == nil || !containsFold(*e.Login, *filter.Login)) {
			continue
		}
		if filter.OrganizationID != nil && !e.InOrganization(*filter.OrganizationID) {
			continue
		}
		if filter.RoleCode != nil && *filter.RoleCode != "" && (e.MainRoleCode == nil || *e.MainRoleCode != *filter.RoleCode) {
			continue
		}
		if filter.OnlyActive && !hasShift(e.ID, func(sh shift.Shift) bool { return sh.OpenAt(filter.Now) }) {
			continue
		}
		if filter.ShiftDay && !hasShift(e.ID, func(sh shift.Shift) bool { return inRange(sh.StartTime, filter.WindowStart, filter.WindowEnd) }) {
			continue
		}

		details := employee.EmployeeWithDetails{Employee: e}
		if e.MainRoleCode != nil {
			name := *e.MainRoleCode
			if roleName, ok := r.s.t.RoleNames[name]; ok {
				name = roleName
			}
			details.RoleName = &name
		}
		details.IsActive = hasShift(e.ID, func(sh shift.Shift) bool {
			return inRange(sh.StartTime, filter.WindowStart, filter.WindowEnd) && sh.OpenAt(filter.Now)
		})
		out = append(out, details)
	}
	sortByID(out, func(e employee.EmployeeWithDetails) int64 { return e.ID })

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type userRepo struct{ s *Store }

func (r userRepo) find(match func(user.User) bool) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *user.User
	for i, u := range r.s.t.Users {
		if match(u) && (found == nil || u.ID < found.ID) {
			found = &r.s.t.Users[i]
		}
	}
	if found == nil {
		return user.User{}, user.ErrUserNotFound
	}
	return *found, nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	return r.find(func(u user.User) bool { return u.ID == id })
}

func (r userRepo) GetByIIKOID(_ context.Context, iikoID string) (user.User, error) {
	return r.find(func(u user.User) bool { return u.IIKOID != nil && *u.IIKOID == iikoID })
}

func (r userRepo) GetByLogin(_ context.Context, login string) (user.User, error) {
	return r.find(func(u user.User) bool { return u.Login == login })
}

type organizationRepo struct{ s *Store }

func (r organizationRepo) List(_ context.Context, filter organization.OrganizationFilter) ([]organization.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []organization.Organization
	for _, o := range r.s.t.Organizations {
		if filter.Name != nil && *filter.Name != "" && !containsFold(o.Name, *filter.Name) {
			continue
		}
		if filter.Code != nil && *filter.Code != "" && (o.Code == nil || !containsFold(*o.Code, *filter.Code)) {
			continue
		}
		if filter.IsActive != nil && o.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, o)
	}
	sortByID(out, func(o organization.Organization) int64 { return o.ID })
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type itemRepo struct{ s *Store }

func (r itemRepo) first(match func(item.Item) bool) (item.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *item.Item
	for i, it := range r.s.t.Items {
		if match(it) && (found == nil || it.ID < found.ID) {
			found = &r.s.t.Items[i]
		}
	}
	if found == nil {
		return item.Item{}, item.ErrItemNotFound
	}
	return *found, nil
}

func (r itemRepo) GetByID(_ context.Context, id int64) (item.Item, error) {
	return r.first(func(it item.Item) bool { return it.ID == id })
}

func (r itemRepo) FindByNameContains(_ context.Context, fragment string) (item.Item, error) {
	return r.first(func(it item.Item) bool { return containsFold(it.Name, fragment) })
}

func (r itemRepo) First(_ context.Context) (item.Item, error) {
	return r.first(func(item.Item) bool { return true })
}

type orderRepo struct{ s *Store }

func (r orderRepo) Summarize(_ context.Context, filter order.Filter) (order.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	summary := order.Summary{Total: decimal.Zero}
	for _, o := range r.s.t.Orders {
		if o.Deleted || !inRange(o.TimeOrder, filter.From, filter.To) {
			continue
		}
		if filter.UserID != nil && (o.UserID == nil || *o.UserID != *filter.UserID) {
			continue
		}
		if filter.OrganizationID != nil && (o.OrganizationID == nil || *o.OrganizationID != *filter.OrganizationID) {
			continue
		}
		summary.Count++
		summary.Total = summary.Total.Add(o.SumOrder)
	}
	return summary, nil
}

type shiftRepo struct{ s *Store }

func (r shiftRepo) ListStartedBetween(_ context.Context, from, to time.Time, employeeID *int64) ([]shift.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []shift.Shift
	for _, sh := range r.s.t.Shifts {
		if !inRange(sh.StartTime, from, to) {
			continue
		}
		if employeeID != nil && sh.EmployeeID != *employeeID {
			continue
		}
		out = append(out, sh)
	}
	return out, nil
}

func (r shiftRepo) GetLatestStartedBetween(_ context.Context, employeeID int64, from, to time.Time) (shift.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *shift.Shift
	for i, sh := range r.s.t.Shifts {
		if sh.EmployeeID != employeeID || !inRange(sh.StartTime, from, to) {
			continue
		}
		if found == nil || sh.StartTime.After(found.StartTime) || (sh.StartTime.Equal(found.StartTime) && sh.ID > found.ID) {
			found = &r.s.t.Shifts[i]
		}
	}
	if found == nil {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return *found, nil
}

func (r shiftRepo) UpdateStartTime(_ context.Context, id int64, startTime time.Time) error {
	if err := r.s.fail("shift.UpdateStartTime"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.t.Shifts {
		if r.s.t.Shifts[i].ID == id {
			r.s.t.Shifts[i].StartTime = startTime
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

func (r shiftRepo) CountOpen(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, sh := range r.s.t.Shifts {
		if !sh.StartTime.After(now) && sh.OpenAt(now) {
			n++
		}
	}
	return n, nil
}

type penaltyRepo struct{ s *Store }

func (r penaltyRepo) Create(_ context.Context, p penalty.Penalty) (penalty.Penalty, error) {
	if err := r.s.fail("penalty.Create"); err != nil {
		return penalty.Penalty{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	p.CreatedAt = time.Now()
	r.s.t.Penalties = append(r.s.t.Penalties, p)
	return p, nil
}

func (r penaltyRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.t.Penalties)), nil
}

func (r penaltyRepo) ListByUserOrEmployee(_ context.Context, userID, employeeID int64) ([]penalty.Penalty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []penalty.Penalty
	for _, p := range r.s.t.Penalties {
		if (p.UserID != nil && *p.UserID == userID) || (p.EmployeeID != nil && *p.EmployeeID == employeeID) {
			out = append(out, p)
		}
	}
	sortByID(out, func(p penalty.Penalty) int64 { return p.ID })
	return out, nil
}

type questRepo struct{ s *Store }

func (r questRepo) CreateReward(_ context.Context, reward quest.Reward) (quest.Reward, error) {
	if err := r.s.fail("quest.CreateReward"); err != nil {
		return quest.Reward{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reward.ID = r.s.id()
	r.s.t.Rewards = append(r.s.t.Rewards, reward)
	return reward, nil
}

func (r questRepo) CreateUserReward(_ context.Context, ur quest.UserReward) (quest.UserReward, error) {
	if err := r.s.fail("quest.CreateUserReward"); err != nil {
		return quest.UserReward{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ur.ID = r.s.id()
	r.s.t.UserRewards = append(r.s.t.UserRewards, ur)
	return ur, nil
}

func (r questRepo) GetRewardByID(_ context.Context, id int64) (quest.Reward, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, reward := range r.s.t.Rewards {
		if reward.ID == id {
			return reward, nil
		}
	}
	return quest.Reward{}, quest.ErrQuestNotFound
}

func (r questRepo) overlapping(from, to time.Time) []quest.Reward {
	var out []quest.Reward
	for _, reward := range r.s.t.Rewards {
		if !reward.StartDate.After(to) && !reward.EndDate.Before(from) {
			out = append(out, reward)
		}
	}
	sortByID(out, func(r quest.Reward) int64 { return r.ID })
	return out
}

func (r questRepo) ListRewardsOverlapping(_ context.Context, from, to time.Time) ([]quest.Reward, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.overlapping(from, to), nil
}

func (r questRepo) CountRewardsOverlapping(_ context.Context, from, to time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.overlapping(from, to))), nil
}

func (r questRepo) GetUserReward(_ context.Context, rewardID, userID int64) (quest.UserReward, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *quest.UserReward
	for i, ur := range r.s.t.UserRewards {
		if ur.RewardID == rewardID && ur.UserID == userID && (found == nil || ur.ID < found.ID) {
			found = &r.s.t.UserRewards[i]
		}
	}
	if found == nil {
		return quest.UserReward{}, quest.ErrUserRewardNotFound
	}
	return *found, nil
}

func (r questRepo) ListUserRewardsByReward(_ context.Context, rewardID int64) ([]quest.UserReward, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []quest.UserReward
	for _, ur := range r.s.t.UserRewards {
		if ur.RewardID == rewardID {
			out = append(out, ur)
		}
	}
	sortByID(out, func(ur quest.UserReward) int64 { return ur.ID })
	return out, nil
}

type userSalaryRepo struct{ s *Store }

func (r userSalaryRepo) GetByUserID(_ context.Context, userID int64) (salary.UserSalary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, us := range r.s.t.UserSalaries {
		if us.UserID == userID {
			return us, nil
		}
	}
	return salary.UserSalary{}, salary.ErrUserSalaryNotFound
}
