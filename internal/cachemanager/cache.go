// Package cachemanager provides the per-set scratch cache.
package cachemanager

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/enumium/internal/log"
)

// Cache is a caller-managed key-value scratch space. Entries never
// expire and are never evicted; the owner decides what lives here and
// for how long.
type Cache struct {
	useCase string
	cache   *gocache.Cache
}

// New creates a scratch cache. useCase labels the owner in log output.
func New(useCase string) *Cache {
	// NoExpiration with a zero cleanup interval: no janitor goroutine,
	// entries stay until deleted or flushed.
	return &Cache{
		useCase: useCase,
		cache:   gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves an entry by its key.
func (c *Cache) Get(key string) (any, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	log.Debug(log.CatCache, "cache hit", "useCase", c.useCase, "key", key)
	return value, true
}

// Set stores an entry under key, replacing any existing one.
func (c *Cache) Set(key string, value any) {
	c.cache.Set(key, value, gocache.NoExpiration)
}

// Has reports whether an entry exists for key.
func (c *Cache) Has(key string) bool {
	_, found := c.cache.Get(key)
	return found
}

// Delete removes the entry for key, if any.
func (c *Cache) Delete(key string) {
	c.cache.Delete(key)
}

// Flush removes every entry.
func (c *Cache) Flush() {
	c.cache.Flush()
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}
