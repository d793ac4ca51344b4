package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

const employeeColumns = `
	e.id, e.iiko_id, e.code, e.name, e.first_name, e.middle_name, e.last_name,
	e.login, e.phone, e.cell_phone, e.email, e.main_role_code,
	e.preferred_organization_id, e.deleted`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row, extra ...any) (employee.Employee, error) {
	var e employee.Employee
	dest := []any{
		&e.ID, &e.IIKOID, &e.Code, &e.Name, &e.FirstName, &e.MiddleName, &e.LastName,
		&e.Login, &e.Phone, &e.CellPhone, &e.Email, &e.MainRoleCode,
		&e.PreferredOrganizationID, &e.Deleted,
	}
	err := row.Scan(append(dest, extra...)...)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees e WHERE e.id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return e, nil
}

// GetByIIKOID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByIIKOID(ctx context.Context, iikoID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees e WHERE e.iiko_id = $1 ORDER BY e.id LIMIT 1`
	e, err := scanEmployee(q.QueryRow(ctx, query, iikoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by iiko id: %w", err)
	}
	return e, nil
}

// ListByRoleCodes implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByRoleCodes(ctx context.Context, roleCodes []string, organizationID *int64) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `
		FROM employees e
		WHERE e.deleted = FALSE
		  AND e.main_role_code = ANY($1)
		  AND ($2::BIGINT IS NULL OR e.preferred_organization_id = $2)
		ORDER BY e.id`

	rows, err := q.Query(ctx, query, roleCodes, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by role: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	// $1..$3 are the activity window and the current time.
	conditions := []string{"e.deleted = $4"}
	args := []interface{}{filter.WindowStart, filter.WindowEnd, filter.Now, filter.Deleted}
	argIdx := 5

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("e.name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Login != nil && *filter.Login != "" {
		conditions = append(conditions, fmt.Sprintf("e.login ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Login+"%")
		argIdx++
	}
	if filter.OrganizationID != nil {
		conditions = append(conditions, fmt.Sprintf("e.preferred_organization_id = $%d", argIdx))
		args = append(args, *filter.OrganizationID)
		argIdx++
	}
	if filter.RoleCode != nil && *filter.RoleCode != "" {
		conditions = append(conditions, fmt.Sprintf("e.main_role_code = $%d", argIdx))
		args = append(args, *filter.RoleCode)
		argIdx++
	}
	if filter.OnlyActive {
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM shifts s
			WHERE s.employee_id = e.id AND (s.end_time IS NULL OR s.end_time > $3))`)
	}
	if filter.ShiftDay {
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM shifts s
			WHERE s.employee_id = e.id AND s.start_time BETWEEN $1 AND $2)`)
	}

	query := fmt.Sprintf(`
		SELECT %s,
			COALESCE(ro.name, e.main_role_code) AS role_name,
			EXISTS (
				SELECT 1 FROM shifts s
				WHERE s.employee_id = e.id
				  AND s.start_time BETWEEN $1 AND $2
				  AND (s.end_time IS NULL OR s.end_time > $3)
			) AS is_active
		FROM employees e
		LEFT JOIN LATERAL (
			SELECT name FROM roles
			WHERE code = e.main_role_code AND deleted = FALSE
			ORDER BY id LIMIT 1
		) ro ON TRUE
		WHERE %s
		ORDER BY e.id`, employeeColumns, strings.Join(conditions, " AND "))

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
		argIdx++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []employee.EmployeeWithDetails
	for rows.Next() {
		var details employee.EmployeeWithDetails
		e, err := scanEmployee(rows, &details.RoleName, &details.IsActive)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		details.Employee = e
		result = append(result, details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return result, nil
}
