// Package mailbox provides a single-slot buffer where the latest value wins.
// The maintenance runner uses it to coalesce triggers: a burst of schedule or
// watch fires collapses into one pending maintenance cycle, which is safe
// because every cycle is idempotent over the same directories.
package mailbox

import "sync"

// Mailbox holds at most one pending value. It is not a queue: Put overwrites
// whatever is pending, Take blocks until something is available.
type Mailbox[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *T
}

func New[T any]() *Mailbox[T] {
	m := &Mailbox[T]{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Put stores a value, replacing any pending one. It never blocks.
func (m *Mailbox[T]) Put(v T) {
	m.mu.Lock()
	m.pending = &v
	m.mu.Unlock()
	m.cond.Signal()
}

// Take blocks until a value is available, then returns it and clears the slot.
func (m *Mailbox[T]) Take() T {
	m.mu.Lock()
	defer m.mu.Unlock()

	for m.pending == nil {
		m.cond.Wait()
	}

	v := *m.pending
	m.pending = nil
	return v
}

// TryTake returns the pending value if present, or nil. It never blocks.
func (m *Mailbox[T]) TryTake() *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.pending
	m.pending = nil
	return v
}
