package salary

import "context"

type UserSalaryRepository interface {
	GetByUserID(ctx context.Context, userID int64) (UserSalary, error)
}
