package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/restoops/staff-backend-go/internal/domain/salary"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

type userSalaryRepositoryImpl struct {
	db *database.DB
}

func NewUserSalaryRepository(db *database.DB) salary.UserSalaryRepository {
	return &userSalaryRepositoryImpl{db: db}
}

// GetByUserID implements salary.UserSalaryRepository.
func (r *userSalaryRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (salary.UserSalary, error) {
	q := GetQuerier(ctx, r.db)

	var us salary.UserSalary
	err := q.QueryRow(ctx, `
		SELECT id, user_id, salary
		FROM user_salary
		WHERE user_id = $1
		ORDER BY id
		LIMIT 1`, userID).Scan(&us.ID, &us.UserID, &us.Salary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.UserSalary{}, salary.ErrUserSalaryNotFound
		}
		return salary.UserSalary{}, fmt.Errorf("failed to get user salary: %w", err)
	}
	return us, nil
}
