package session

import (
	"sync"
)

// stateCell is an epoch-fenced holder for session state. A writer that starts
// a request records the epoch of its Loading write; the completion only lands
// while that epoch is still current. Any later write (a newer request, a
// reset, an injected error) bumps the epoch and fences the stale completion
// out, so the visible state always belongs to the most recently issued
// operation.
type stateCell[T any] struct {
	mu    sync.Mutex
	epoch uint64
	state T
}

func newStateCell[T any](initial T) *stateCell[T] {
	return &stateCell[T]{state: initial}
}

// set writes unconditionally and invalidates every in-flight epoch.
func (c *stateCell[T]) set(state T) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.state = state
	return c.epoch
}

// complete writes only if no write happened since the given epoch. It reports
// whether the write landed.
func (c *stateCell[T]) complete(epoch uint64, state T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return false
	}
	c.epoch++
	c.state = state
	return true
}

func (c *stateCell[T]) load() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
