package postgresql

import (
	"context"
	"fmt"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

type penaltyRepositoryImpl struct {
	db *database.DB
}

func NewPenaltyRepository(db *database.DB) penalty.PenaltyRepository {
	return &penaltyRepositoryImpl{db: db}
}

// Create implements penalty.PenaltyRepository.
func (r *penaltyRepositoryImpl) Create(ctx context.Context, p penalty.Penalty) (penalty.Penalty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO penalty (employee_id, user_id, penalty_sum, description, penalty_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query, p.EmployeeID, p.UserID, p.PenaltySum, p.Description, p.PenaltyDate).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err, "penalty_employee_id_fkey") {
			return penalty.Penalty{}, employee.ErrEmployeeNotFound
		}
		if isForeignKeyViolation(err, "penalty_user_id_fkey") {
			return penalty.Penalty{}, user.ErrUserNotFound
		}
		return penalty.Penalty{}, fmt.Errorf("failed to create penalty: %w", err)
	}
	return p, nil
}

// CountAll implements penalty.PenaltyRepository.
func (r *penaltyRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM penalty`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count penalties: %w", err)
	}
	return count, nil
}

// ListByUserOrEmployee implements penalty.PenaltyRepository.
func (r *penaltyRepositoryImpl) ListByUserOrEmployee(ctx context.Context, userID, employeeID int64) ([]penalty.Penalty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, user_id, penalty_sum, description, penalty_date, created_at
		FROM penalty
		WHERE user_id = $1 OR employee_id = $2
		ORDER BY id`

	rows, err := q.Query(ctx, query, userID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list penalties: %w", err)
	}
	defer rows.Close()

	var penalties []penalty.Penalty
	for rows.Next() {
		var p penalty.Penalty
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.UserID, &p.PenaltySum, &p.Description, &p.PenaltyDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan penalty: %w", err)
		}
		penalties = append(penalties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate penalties: %w", err)
	}
	return penalties, nil
}
