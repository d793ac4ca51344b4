// Package cache provides read-through caching decorators for repositories
// whose data changes only through the upstream sync.
package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/restoops/staff-backend-go/internal/domain/item"
)

var itemCacheRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "staff_item_cache_requests_total",
		Help: "Item cache lookups by result",
	},
	[]string{"result"},
)

type itemRepository struct {
	next  item.ItemRepository
	cache *expirable.LRU[string, item.Item]
}

// NewItemRepository wraps next with an expiring LRU. Misses and errors are
// never cached.
func NewItemRepository(next item.ItemRepository, maxSize int, ttl time.Duration) item.ItemRepository {
	return &itemRepository{
		next:  next,
		cache: expirable.NewLRU[string, item.Item](maxSize, nil, ttl),
	}
}

func (r *itemRepository) lookup(key string, load func() (item.Item, error)) (item.Item, error) {
	if it, ok := r.cache.Get(key); ok {
		itemCacheRequests.WithLabelValues("hit").Inc()
		return it, nil
	}
	itemCacheRequests.WithLabelValues("miss").Inc()

	it, err := load()
	if err != nil {
		return item.Item{}, err
	}
	r.cache.Add(key, it)
	return it, nil
}

// GetByID implements item.ItemRepository.
func (r *itemRepository) GetByID(ctx context.Context, id int64) (item.Item, error) {
	return r.lookup("id:"+strconv.FormatInt(id, 10), func() (item.Item, error) {
		return r.next.GetByID(ctx, id)
	})
}

// FindByNameContains implements item.ItemRepository.
func (r *itemRepository) FindByNameContains(ctx context.Context, fragment string) (item.Item, error) {
	return r.lookup("name:"+strings.ToLower(fragment), func() (item.Item, error) {
		return r.next.FindByNameContains(ctx, fragment)
	})
}

// First implements item.ItemRepository.
func (r *itemRepository) First(ctx context.Context) (item.Item, error) {
	return r.lookup("first", func() (item.Item, error) {
		return r.next.First(ctx)
	})
}
