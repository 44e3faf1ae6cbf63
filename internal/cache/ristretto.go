// Package cache is a small in-process cache on top of ristretto.
package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// GeneralCache is a local cache with an optional default TTL. Every entry
// costs 1, so maxCost is the entry capacity.
type GeneralCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewGeneralCache builds a cache holding up to maxCost entries. A zero ttl
// keeps entries until they are evicted or deleted.
func NewGeneralCache(maxCost int64, ttl time.Duration) (*GeneralCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,

		// Costs count entries, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &GeneralCache{cache: c, ttl: ttl}, nil
}

// Set stores value under key using the default TTL and waits until the
// write is visible to Get. It reports whether the entry was admitted.
func (c *GeneralCache) Set(key string, value any) bool {
	return c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL is Set with an explicit TTL.
func (c *GeneralCache) SetWithTTL(key string, value any, ttl time.Duration) bool {
	ok := c.cache.SetWithTTL(key, value, 1, ttl)
	c.cache.Wait()
	return ok
}

// Get returns the value stored under key.
func (c *GeneralCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Delete removes key.
func (c *GeneralCache) Delete(key string) {
	c.cache.Del(key)
}

// Clear drops every entry.
func (c *GeneralCache) Clear() {
	c.cache.Clear()
}

// Close stops the cache's background goroutines.
func (c *GeneralCache) Close() {
	c.cache.Close()
}
