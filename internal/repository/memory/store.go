// Package memory is an in-process implementation of the repository
// interfaces. Writes inside WithinTransaction are discarded when fn fails.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

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

type tables struct {
	Employees     []employee.Employee
	Users         []user.User
	Organizations []organization.Organization
	Items         []item.Item
	Orders        []order.Order
	Shifts        []shift.Shift
	Penalties     []penalty.Penalty
	Rewards       []quest.Reward
	UserRewards   []quest.UserReward
	UserSalaries  []salary.UserSalary
	RoleNames     map[string]string
	nextID        int64
}

func (t tables) clone() tables {
	c := t
	c.Employees = append([]employee.Employee(nil), t.Employees...)
	c.Users = append([]user.User(nil), t.Users...)
	c.Organizations = append([]organization.Organization(nil), t.Organizations...)
	c.Items = append([]item.Item(nil), t.Items...)
	c.Orders = append([]order.Order(nil), t.Orders...)
	c.Shifts = append([]shift.Shift(nil), t.Shifts...)
	c.Penalties = append([]penalty.Penalty(nil), t.Penalties...)
	c.Rewards = append([]quest.Reward(nil), t.Rewards...)
	c.UserRewards = append([]quest.UserReward(nil), t.UserRewards...)
	c.UserSalaries = append([]salary.UserSalary(nil), t.UserSalaries...)
	c.RoleNames = make(map[string]string, len(t.RoleNames))
	for k, v := range t.RoleNames {
		c.RoleNames[k] = v
	}
	return c
}

// Store holds every table in memory.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	t    tables

	// FailOn makes the named write operation return ErrInjected.
	FailOn map[string]bool
}

func NewStore() *Store {
	return &Store{
		t:      tables{RoleNames: map[string]string{}, nextID: 1000},
		FailOn: map[string]bool{},
	}
}

func (s *Store) id() int64 {
	s.t.nextID++
	return s.t.nextID
}

// WithinTransaction implements database.Transactor. Transactions are
// serialized; a failing fn restores the snapshot taken at the start.
func (s *Store) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.t.clone()
	s.mu.RUnlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.t = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Seeding helpers. Each returns the stored row with its id assigned when
// the given id is zero.

func (s *Store) AddEmployee(e employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == 0 {
		e.ID = s.id()
	}
	s.t.Employees = append(s.t.Employees, e)
	return e
}

func (s *Store) AddUser(u user.User) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	s.t.Users = append(s.t.Users, u)
	return u
}

func (s *Store) AddOrganization(o organization.Organization) organization.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.id()
	}
	s.t.Organizations = append(s.t.Organizations, o)
	return o
}

func (s *Store) AddItem(it item.Item) item.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it.ID == 0 {
		it.ID = s.id()
	}
	s.t.Items = append(s.t.Items, it)
	return it
}

func (s *Store) AddOrder(o order.Order) order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.id()
	}
	s.t.Orders = append(s.t.Orders, o)
	return o
}

func (s *Store) AddShift(sh shift.Shift) shift.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sh.ID == 0 {
		sh.ID = s.id()
	}
	s.t.Shifts = append(s.t.Shifts, sh)
	return sh
}

func (s *Store) AddPenalty(p penalty.Penalty) penalty.Penalty {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.id()
	}
	s.t.Penalties = append(s.t.Penalties, p)
	return p
}

func (s *Store) AddReward(r quest.Reward) quest.Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		r.ID = s.id()
	}
	s.t.Rewards = append(s.t.Rewards, r)
	return r
}

func (s *Store) AddUserReward(ur quest.UserReward) quest.UserReward {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ur.ID == 0 {
		ur.ID = s.id()
	}
	s.t.UserRewards = append(s.t.UserRewards, ur)
	return ur
}

func (s *Store) AddUserSalary(us salary.UserSalary) salary.UserSalary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if us.ID == 0 {
		us.ID = s.id()
	}
	s.t.UserSalaries = append(s.t.UserSalaries, us)
	return us
}

func (s *Store) SetRoleName(code, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.RoleNames[code] = name
}

// Snapshot accessors for assertions.

func (s *Store) Shifts() []shift.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]shift.Shift(nil), s.t.Shifts...)
}

func (s *Store) Penalties() []penalty.Penalty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]penalty.Penalty(nil), s.t.Penalties...)
}

func (s *Store) Rewards() []quest.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]quest.Reward(nil), s.t.Rewards...)
}

func (s *Store) UserRewards() []quest.UserReward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]quest.UserReward(nil), s.t.UserRewards...)
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func sortByID[T any](rows []T, id func(T) int64) {
	sort.SliceStable(rows, func(i, j int) bool { return id(rows[i]) < id(rows[j]) })
}
