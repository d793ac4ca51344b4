package organization

import "github.com/restoops/staff-backend-go/internal/pkg/validator"

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type OrganizationFilter struct {
	Name     *string
	Code     *string
	IsActive *bool
	Limit    int
	Offset   int
}

func (f *OrganizationFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Limit < 0 || f.Limit > MaxListLimit {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be between 0 and 1000"})
	}
	if f.Offset < 0 {
		errs = append(errs, validator.ValidationError{Field: "offset", Message: "offset must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrganizationResponse struct {
	ID       int64   `json:"id"`
	IIKOID   *string `json:"iikoId"`
	Name     string  `json:"name"`
	Code     *string `json:"code"`
	IsActive bool    `json:"isActive"`
}

type ListOrganizationResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Count         int                    `json:"count"`
}
