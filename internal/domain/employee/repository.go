package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	// GetByIIKOID returns the first employee by id carrying iikoID.
	GetByIIKOID(ctx context.Context, iikoID string) (Employee, error)
	// ListByRoleCodes returns non-deleted employees whose main_role_code is in
	// roleCodes, optionally narrowed to a preferred organization.
	ListByRoleCodes(ctx context.Context, roleCodes []string, organizationID *int64) ([]Employee, error)
	List(ctx context.Context, filter ListFilter) ([]EmployeeWithDetails, error)
}

// ListFilter is the repository form of EmployeeFilter with the activity
// window already resolved.
type ListFilter struct {
	Name           *string
	Login          *string
	OrganizationID *int64
	RoleCode       *string
	Deleted        bool
	OnlyActive     bool
	ShiftDay       bool
	WindowStart    time.Time
	WindowEnd      time.Time
	Now            time.Time
	Limit          int
	Offset         int
}
