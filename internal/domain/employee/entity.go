package employee

// Employee is a staff record mirrored from the POS/HR system. Rows are
// written only by the upstream sync job.
type Employee struct {
	ID                      int64
	IIKOID                  string
	Code                    *string
	Name                    *string
	FirstName               *string
	MiddleName              *string
	LastName                *string
	Login                   *string
	Phone                   *string
	CellPhone               *string
	Email                   *string
	MainRoleCode            *string
	PreferredOrganizationID *int64
	Deleted                 bool
}

// DisplayName returns the employee name or fallback when it is unset.
func (e Employee) DisplayName(fallback string) string {
	if e.Name != nil && *e.Name != "" {
		return *e.Name
	}
	return fallback
}

// InOrganization reports whether the employee's preferred organization is orgID.
func (e Employee) InOrganization(orgID int64) bool {
	return e.PreferredOrganizationID != nil && *e.PreferredOrganizationID == orgID
}

// WaiterRoleCodes lists the main_role_code values that identify a waiter.
var WaiterRoleCodes = []string{"waiter", "Waiter", "WAITER", "Официант"}

// EmployeeWithDetails is a listing row joined with role and shift state.
type EmployeeWithDetails struct {
	Employee
	RoleName *string
	IsActive bool
}
