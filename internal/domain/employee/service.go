package employee

import "context"

// EmployeeService exposes the master-data employee listing.
type EmployeeService interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
