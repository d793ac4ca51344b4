package salary

import "context"

type SalaryService interface {
	// CalculateSalary builds the daily earnings report. An unparseable date
	// or an unresolved employee yields ErrSalaryNotFound.
	CalculateSalary(ctx context.Context, req SalaryRequest) (SalaryResponse, error)
}
