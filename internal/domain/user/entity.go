package user

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access
	RoleManager Role = "manager" // Shift and incentive management
	RoleWaiter  Role = "waiter"  // Own shift, quests and salary
)

// User is a login account. IIKOID correlates the account with an Employee
// through the shared POS identifier; the link is not a foreign key.
type User struct {
	ID           int64
	IIKOID       *string
	Name         *string
	Login        string
	PasswordHash string
	Role         Role
}
