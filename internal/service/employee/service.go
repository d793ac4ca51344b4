package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/pkg/utils"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, now func() time.Time) employee.EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          now,
	}
}

// Helper function to map EmployeeWithDetails to EmployeeResponse
func mapEmployeeToResponse(emp employee.EmployeeWithDetails) employee.EmployeeResponse {
	role := emp.RoleName
	if role == nil {
		role = emp.MainRoleCode
	}
	return employee.EmployeeResponse{
		ID:                      emp.ID,
		IIKOID:                  emp.IIKOID,
		Code:                    emp.Code,
		Name:                    emp.Name,
		FirstName:               emp.FirstName,
		MiddleName:              emp.MiddleName,
		LastName:                emp.LastName,
		Login:                   emp.Login,
		Phone:                   emp.Phone,
		CellPhone:               emp.CellPhone,
		Email:                   emp.Email,
		MainRoleCode:            emp.MainRoleCode,
		Role:                    role,
		PreferredOrganizationID: emp.PreferredOrganizationID,
		Deleted:                 emp.Deleted,
		IsActive:                emp.IsActive,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	now := s.now()
	listFilter := employee.ListFilter{
		Name:           filter.Name,
		Login:          filter.Login,
		OrganizationID: filter.OrganizationID,
		RoleCode:       filter.RoleCode,
		Deleted:        filter.Deleted,
		OnlyActive:     filter.Status == "active",
		Now:            now,
		Limit:          filter.Limit,
		Offset:         filter.Offset,
	}

	// An unparseable date drops the shift-day filter; isActive then uses today.
	day, ok := utils.ParseDate(filter.Date, now.Location())
	if ok {
		listFilter.ShiftDay = true
	} else {
		day = now
	}
	listFilter.WindowStart, listFilter.WindowEnd = utils.DayBounds(day)

	employees, err := s.employeeRepo.List(ctx, listFilter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Employees: responses,
		Count:     len(responses),
	}, nil
}
