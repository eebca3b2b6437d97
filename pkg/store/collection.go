package store

import "sync"

// Collection is a mutex-guarded in-memory set of records keyed by id. It
// stands in for a database table: seeded once at startup, mutated for the
// lifetime of the process, gone on restart.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

func NewCollection[T any](id func(T) string, seed []T) *Collection[T] {
	c := &Collection[T]{id: id}
	c.items = append(c.items, seed...)
	return c
}

// List returns a snapshot copy of the collection.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Replace swaps the stored record with the given one, matched by id. The
// whole record is replaced, never a partial-field merge.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
