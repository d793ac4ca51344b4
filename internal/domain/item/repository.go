package item

import "context"

type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (Item, error)
	// FindByNameContains returns the first item by id whose name contains
	// fragment, case-insensitively.
	FindByNameContains(ctx context.Context, fragment string) (Item, error)
	// First returns the item with the lowest id.
	First(ctx context.Context) (Item, error)
}
