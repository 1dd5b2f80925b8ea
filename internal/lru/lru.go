// Package lru provides a small generic least-recently-used map, used by the
// css package to cache compiled selectors per document.
package lru

import "container/list"

// Cache is a fixed-capacity map that evicts the least recently accessed entry
// once it grows past size. Not safe for concurrent use: documents (and their
// selector caches) are single-threaded per the engine's concurrency model.
type Cache[K comparable, V any] struct {
	size  int
	items map[K]*list.Element
	order *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a Cache holding at most size entries.
func New[K comparable, V any](size int) *Cache[K, V] {
	if size < 1 {
		size = 1
	}
	return &Cache[K, V]{
		size:  size,
		items: make(map[K]*list.Element),
		order: list.New(),
	}
}

// Get returns the value for key and promotes it to most-recently-used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(e)
	return e.Value.(entry[K, V]).value, true
}

// Add inserts or updates key, evicting the oldest entry if over capacity.
// Returns true if an existing entry was evicted.
func (c *Cache[K, V]) Add(key K, value V) (evicted bool) {
	if e, ok := c.items[key]; ok {
		c.order.MoveToFront(e)
		e.Value = entry[K, V]{key: key, value: value}
		return false
	}

	e := c.order.PushFront(entry[K, V]{key: key, value: value})
	c.items[key] = e

	if c.order.Len() <= c.size {
		return false
	}

	oldest := c.order.Back()
	if oldest != nil {
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(entry[K, V]).key)
	}
	return true
}

// Len returns the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.items = make(map[K]*list.Element)
	c.order.Init()
}
