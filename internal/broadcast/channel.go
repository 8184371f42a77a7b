// Package broadcast fans published values out to subscribers.
// Each subscriber owns a small buffered channel; a slow subscriber loses its
// oldest pending values instead of blocking the publisher.
package broadcast

import "sync"

// Channel is a single subscriber endpoint.
type Channel[T any] struct {
	id       uint64
	values   chan T
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannel creates a channel endpoint.
// bufferSize controls how many values can be pending before the oldest is dropped.
func NewChannel[T any](bufferSize int) *Channel[T] {
	if bufferSize < 1 {
		bufferSize = 16 // Default buffer size
	}
	return &Channel[T]{
		values: make(chan T, bufferSize),
		done:   make(chan struct{}),
	}
}

// Send delivers v without blocking.
// If the buffer is full, the oldest value is dropped to make room.
func (c *Channel[T]) Send(v T) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.values <- v:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-c.values:
		default:
		}
		select {
		case c.values <- v:
		default:
		}
	}
}

// C returns the channel to receive values from.
func (c *Channel[T]) C() <-chan T {
	return c.values
}

// Done returns a channel that closes when the endpoint is closed.
func (c *Channel[T]) Done() <-chan struct{} {
	return c.done
}

// Close marks the endpoint as done.
// Safe to call multiple times.
func (c *Channel[T]) Close() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}

// Hub tracks active subscribers.
// Thread-safe for concurrent access.
type Hub[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]*Channel[T]
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[uint64]*Channel[T]),
	}
}

// Subscribe registers a new subscriber.
func (h *Hub[T]) Subscribe(bufferSize int) *Channel[T] {
	ch := NewChannel[T](bufferSize)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	ch.id = h.nextID
	h.subs[ch.id] = ch
	return ch
}

// Unsubscribe removes a subscriber and closes it.
func (h *Hub[T]) Unsubscribe(ch *Channel[T]) {
	h.mu.Lock()
	delete(h.subs, ch.id)
	h.mu.Unlock()
	ch.Close()
}

// Publish delivers v to every subscriber.
func (h *Hub[T]) Publish(v T) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		ch.Send(v)
	}
}

// PublishFunc delivers a fresh value from next to every subscriber,
// so subscribers never share mutable state.
func (h *Hub[T]) PublishFunc(next func() T) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		ch.Send(next())
	}
}

// Count returns the number of registered subscribers.
func (h *Hub[T]) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// CloseAll closes and removes every subscriber.
func (h *Hub[T]) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		ch.Close()
		delete(h.subs, id)
	}
}
