package salary

// UserSalary is a per-user salary percentage setting.
type UserSalary struct {
	ID     int64
	UserID int64
	Salary int
}

// DefaultPercentage is the share of revenue paid as base salary.
const DefaultPercentage = 5
