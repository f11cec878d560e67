package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/dimasprsty/storefront/model"
)

// categoryCache keeps the active-category list in process for a bounded
// window; categories change rarely but every search response carries them.
// Expiry is checked lazily at access time. The fetch mutex guarantees a
// single recomputation when concurrent requests miss at once.
type categoryCache struct {
	ttl   time.Duration
	fetch func(ctx context.Context) ([]model.CategoryView, error)

	mu        sync.RWMutex
	data      []model.CategoryView
	fetchedAt time.Time
}

func newCategoryCache(ttl time.Duration, fetch func(ctx context.Context) ([]model.CategoryView, error)) *categoryCache {
	return &categoryCache{ttl: ttl, fetch: fetch}
}

func (c *categoryCache) get(ctx context.Context) ([]model.CategoryView, error) {
	c.mu.RLock()
	if c.data != nil && time.Since(c.fetchedAt) < c.ttl {
		data := c.data
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if c.data != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.data, nil
	}

	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.data = data
	c.fetchedAt = time.Now()
	return data, nil
}

// invalidate drops the cached list; the next read refetches.
func (c *categoryCache) invalidate() {
	c.mu.Lock()
	c.data = nil
	c.mu.Unlock()
}
