package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/restoops/staff-backend-go/internal/domain/shift"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// ListStartedBetween implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListStartedBetween(ctx context.Context, from, to time.Time, employeeID *int64) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_time, end_time
		FROM shifts
		WHERE start_time BETWEEN $1 AND $2
		  AND ($3::BIGINT IS NULL OR employee_id = $3)
		ORDER BY start_time, id`

	rows, err := q.Query(ctx, query, from, to, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}
	return shifts, nil
}

// GetLatestStartedBetween implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetLatestStartedBetween(ctx context.Context, employeeID int64, from, to time.Time) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_time, end_time
		FROM shifts
		WHERE employee_id = $1
		  AND start_time BETWEEN $2 AND $3
		ORDER BY start_time DESC, id DESC
		LIMIT 1`

	var s shift.Shift
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&s.ID, &s.EmployeeID, &s.StartTime, &s.EndTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get latest shift: %w", err)
	}
	return s, nil
}

// UpdateStartTime implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) UpdateStartTime(ctx context.Context, id int64, startTime time.Time) error {
	q := GetQuerier(ctx, r.db)

	cmd, err := q.Exec(ctx, `UPDATE shifts SET start_time = $1 WHERE id = $2`, startTime, id)
	if err != nil {
		return fmt.Errorf("failed to update shift start time: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// CountOpen implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) CountOpen(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM shifts
		WHERE start_time <= $1
		  AND (end_time IS NULL OR end_time > $1)`, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open shifts: %w", err)
	}
	return count, nil
}
