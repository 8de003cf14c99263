// Package broadcast provides a minimal typed publish/subscribe bus for
// in-process notifications. Publishing is synchronous; subscribers run on the
// publisher's goroutine with no ordering guarantee among them.
package broadcast

import "sync"

// Bus dispatches events of type T to registered subscribers.
// The zero value is not usable; create instances with New.
type Bus[T any] struct {
	mu   sync.RWMutex
	subs map[int]func(T)
	next int
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[int]func(T))}
}

// Subscribe registers fn and returns a cancel function that removes it.
// Cancel is idempotent and safe to call concurrently with Publish.
func (b *Bus[T]) Subscribe(fn func(T)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers ev to every current subscriber. The subscriber snapshot is
// taken under the read lock so a subscriber may cancel itself or others
// without deadlocking.
func (b *Bus[T]) Publish(ev T) {
	b.mu.RLock()
	fns := make([]func(T), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Len returns the number of active subscribers.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
