package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/restoops/staff-backend-go/internal/domain/item"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

type itemRepositoryImpl struct {
	db *database.DB
}

func NewItemRepository(db *database.DB) item.ItemRepository {
	return &itemRepositoryImpl{db: db}
}

func (r *itemRepositoryImpl) getOne(ctx context.Context, where string, args ...any) (item.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, iiko_id, name, price, deleted
		FROM items
		WHERE ` + where + `
		ORDER BY id
		LIMIT 1`

	var it item.Item
	err := q.QueryRow(ctx, query, args...).Scan(&it.ID, &it.IIKOID, &it.Name, &it.Price, &it.Deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.Item{}, item.ErrItemNotFound
		}
		return item.Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	return it, nil
}

// GetByID implements item.ItemRepository.
func (r *itemRepositoryImpl) GetByID(ctx context.Context, id int64) (item.Item, error) {
	return r.getOne(ctx, "id = $1", id)
}

// FindByNameContains implements item.ItemRepository.
func (r *itemRepositoryImpl) FindByNameContains(ctx context.Context, fragment string) (item.Item, error) {
	return r.getOne(ctx, "name ILIKE '%' || $1 || '%'", fragment)
}

// First implements item.ItemRepository.
func (r *itemRepositoryImpl) First(ctx context.Context) (item.Item, error) {
	return r.getOne(ctx, "TRUE")
}
