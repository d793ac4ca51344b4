package employee

import (
	"github.com/restoops/staff-backend-go/internal/pkg/validator"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// EmployeeFilter carries the raw query parameters of the employee listing.
type EmployeeFilter struct {
	Name           *string
	Login          *string
	OrganizationID *int64
	RoleCode       *string
	Deleted        bool
	Status         string
	Date           string
	Limit          int
	Offset         int
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Limit < 0 || f.Limit > MaxListLimit {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: ErrInvalidLimit.Error()})
	}
	if f.Offset < 0 {
		errs = append(errs, validator.ValidationError{Field: "offset", Message: "offset must not be negative"})
	}
	if f.Status != "" && f.Status != "active" {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be 'active'"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                      int64   `json:"id"`
	IIKOID                  string  `json:"iikoId"`
	Code                    *string `json:"code"`
	Name                    *string `json:"name"`
	FirstName               *string `json:"firstName"`
	MiddleName              *string `json:"middleName"`
	LastName                *string `json:"lastName"`
	Login                   *string `json:"login"`
	Phone                   *string `json:"phone"`
	CellPhone               *string `json:"cellPhone"`
	Email                   *string `json:"email"`
	MainRoleCode            *string `json:"mainRoleCode"`
	Role                    *string `json:"role"`
	PreferredOrganizationID *int64  `json:"preferredOrganizationId"`
	Deleted                 bool    `json:"deleted"`
	IsActive                bool    `json:"isActive"`
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Count     int                `json:"count"`
}
