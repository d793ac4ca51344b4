package penalty

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/validator"
	"github.com/restoops/staff-backend-go/internal/repository/memory"
)

var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newTestService(store *memory.Store) penalty.FineService {
	return NewFineService(store, store.PenaltyRepo(), store.Employees(), store.Users(), func() time.Time { return testNow })
}

func TestCreateFine_LinksUserAndEmployee(t *testing.T) {
	store := memory.NewStore()
	emp := store.AddEmployee(employee.Employee{IIKOID: "iiko-1", Name: ptr("Anna")})
	u := store.AddUser(user.User{IIKOID: ptr("iiko-1"), Login: "anna"})

	resp, err := newTestService(store).CreateFine(context.Background(), penalty.CreateFineRequest{
		EmployeeID: fmt.Sprint(emp.ID),
		Reason:     "Late for shift",
		Amount:     decimal.NewFromInt(500),
		Date:       "10.03.2025",
	})
	require.NoError(t, err)

	rows := store.Penalties()
	require.Len(t, rows, 1)
	assert.Equal(t, rows[0].ID, resp.FineID)
	assert.Equal(t, emp.ID, *rows[0].EmployeeID)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, u.ID, *rows[0].UserID)
	assert.Equal(t, "Late for shift", rows[0].Reason())
	assert.True(t, decimal.NewFromInt(500).Equal(rows[0].PenaltySum))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), rows[0].PenaltyDate)
}

func TestCreateFine_WithoutUserAndDateFallback(t *testing.T) {
	store := memory.NewStore()
	emp := store.AddEmployee(employee.Employee{IIKOID: "iiko-2"})

	_, err := newTestService(store).CreateFine(context.Background(), penalty.CreateFineRequest{
		EmployeeID: fmt.Sprint(emp.ID),
		Reason:     "Broken glass",
		Amount:     decimal.RequireFromString("150.50"),
		Date:       "yesterday",
	})
	require.NoError(t, err)

	rows := store.Penalties()
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].UserID)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), rows[0].PenaltyDate)
}

func TestCreateFine_EmployeeNotFound(t *testing.T) {
	store := memory.NewStore()

	_, err := newTestService(store).CreateFine(context.Background(), penalty.CreateFineRequest{
		EmployeeID: "77",
		Reason:     "x",
		Amount:     decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, store.Penalties())
}

func TestCreateFine_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  penalty.CreateFineRequest
	}{
		{"non numeric id", penalty.CreateFineRequest{EmployeeID: "abc", Reason: "x", Amount: decimal.NewFromInt(1)}},
		{"blank reason", penalty.CreateFineRequest{EmployeeID: "1", Reason: "  ", Amount: decimal.NewFromInt(1)}},
		{"zero amount", penalty.CreateFineRequest{EmployeeID: "1", Reason: "x", Amount: decimal.Zero}},
		{"negative amount", penalty.CreateFineRequest{EmployeeID: "1", Reason: "x", Amount: decimal.NewFromInt(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(memory.NewStore()).CreateFine(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestCreateFine_RollbackOnWriteFailure(t *testing.T) {
	store := memory.NewStore()
	emp := store.AddEmployee(employee.Employee{IIKOID: "iiko-3"})
	store.FailOn["penalty.Create"] = true

	_, err := newTestService(store).CreateFine(context.Background(), penalty.CreateFineRequest{
		EmployeeID: fmt.Sprint(emp.ID),
		Reason:     "x",
		Amount:     decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, memory.ErrInjected)
	assert.Empty(t, store.Penalties())
}
