// Package cache provides the in-memory rate cache implementation.
package cache

import (
	"sync"
	"time"

	"github.com/lumeo-app/backend/pkg/exchange"
)

// DefaultTTL bounds how long a fetched rate table is reused before a
// fresh provider call is made.
const DefaultTTL = time.Hour

type entry struct {
	table     *exchange.RateTable
	expiresAt time.Time
}

// MemoryRateCache implements exchange.RateCache with a mutex-guarded map
// keyed by base currency. Staleness is acceptable, corruption is not:
// last-writer-wins per key.
type MemoryRateCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryRateCache creates a cache with the given TTL; zero or
// negative falls back to DefaultTTL.
func NewMemoryRateCache(ttl time.Duration) *MemoryRateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryRateCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached table for a base currency while it is fresh.
// An expired entry is reported as a miss.
func (c *MemoryRateCache) Get(base string) (*exchange.RateTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[base]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.table, true
}

// Put stores or overwrites the table for a base currency.
func (c *MemoryRateCache) Put(base string, table *exchange.RateTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[base] = entry{
		table:     table,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear empties the cache. Administrative operation.
func (c *MemoryRateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}
