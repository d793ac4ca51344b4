package postgresql

import (
	"context"
	"fmt"

	"github.com/restoops/staff-backend-go/internal/domain/order"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

// Summarize implements order.OrderRepository.
func (r *orderRepositoryImpl) Summarize(ctx context.Context, filter order.Filter) (order.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COALESCE(SUM(sum_order), 0)
		FROM d_order
		WHERE deleted = FALSE
		  AND time_order BETWEEN $1 AND $2
		  AND ($3::BIGINT IS NULL OR user_id = $3)
		  AND ($4::BIGINT IS NULL OR organization_id = $4)`

	var s order.Summary
	err := q.QueryRow(ctx, query, filter.From, filter.To, filter.UserID, filter.OrganizationID).Scan(&s.Count, &s.Total)
	if err != nil {
		return order.Summary{}, fmt.Errorf("failed to summarize orders: %w", err)
	}
	return s, nil
}
