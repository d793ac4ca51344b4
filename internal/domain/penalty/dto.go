package penalty

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/restoops/staff-backend-go/internal/pkg/validator"
)

type CreateFineRequest struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Reason       string          `json:"reason"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
}

func (r *CreateFineRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsNumeric(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId must be a numeric id"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if !validator.IsPositive(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedEmployeeID returns EmployeeID as an integer. Call after Validate.
func (r *CreateFineRequest) ParsedEmployeeID() (int64, error) {
	return strconv.ParseInt(r.EmployeeID, 10, 64)
}

type CreateFineResponse struct {
	FineID int64 `json:"fine_id"`
}
