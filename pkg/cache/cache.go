// Package cache provides the get-or-compute memoization used by the
// framework parser and the runtime graph. The owner of an engine chooses
// the implementation: Map for single-goroutine use, Concurrent when the
// engine is shared.
package cache

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes values by string key. Entries are never evicted.
type Cache[V any] interface {
	// GetOrCompute returns the cached value for key, calling compute and
	// storing its result on a miss. compute must be pure.
	GetOrCompute(key string, compute func() V) V

	// Len returns the number of cached entries
	Len() int
}

// Stats reports hit and miss counters
type Stats struct {
	Hits   int64
	Misses int64
}

// Map is an unsynchronized cache. It must not be shared between goroutines.
type Map[V any] struct {
	items map[string]V
	stats Stats
}

// NewMap creates an unsynchronized cache
func NewMap[V any]() *Map[V] {
	return &Map[V]{items: make(map[string]V)}
}

// GetOrCompute implements Cache
func (m *Map[V]) GetOrCompute(key string, compute func() V) V {
	if v, ok := m.items[key]; ok {
		m.stats.Hits++
		return v
	}
	m.stats.Misses++
	v := compute()
	m.items[key] = v
	return v
}

// Len implements Cache
func (m *Map[V]) Len() int {
	return len(m.items)
}

// Stats returns the hit and miss counters
func (m *Map[V]) Stats() Stats {
	return m.stats
}

// Concurrent is safe for concurrent use. Reads take a shared lock;
// concurrent misses on the same key run compute once.
type Concurrent[V any] struct {
	mu     sync.RWMutex
	items  map[string]V
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// NewConcurrent creates a cache that can be shared between goroutines
func NewConcurrent[V any]() *Concurrent[V] {
	return &Concurrent[V]{items: make(map[string]V)}
}

// GetOrCompute implements Cache
func (c *Concurrent[V]) GetOrCompute(key string, compute func() V) V {
	c.mu.RLock()
	v, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v
	}

	result, _, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		cached, ok := c.items[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		c.misses.Add(1)
		computed := compute()

		c.mu.Lock()
		c.items[key] = computed
		c.mu.Unlock()
		return computed, nil
	})
	return result.(V)
}

// Len implements Cache
func (c *Concurrent[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns the hit and miss counters
func (c *Concurrent[V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
