// Package ring provides a fixed-capacity single-producer/single-consumer ring buffer.
//
// A [Buffer] never blocks and never allocates after construction, which makes the
// producer side safe to use from a context that cannot wait, such as a signal or
// interrupt handler. The producer only advances the head index and the consumer
// only advances the tail index, so the two sides need no lock between them.
//
// Exactly one producer and one consumer are supported. Multiple concurrent
// producers (or consumers) are a data race.
package ring

import "sync/atomic"

// Buffer is a fixed-capacity SPSC ring buffer.
// The zero value is not usable; create one with [New].
type Buffer[T any] struct {
	// head is only written by the producer, tail only by the consumer.
	// Each side reads the other's index atomically instead of locking.
	head atomic.Uint32
	tail atomic.Uint32
	buf  []T
}

// New creates a [Buffer] that can hold up to capacity values.
// Panics if capacity is less than 1.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("ring capacity must be >= 1")
	}
	// One slot is kept empty to distinguish full from empty.
	return &Buffer[T]{buf: make([]T, capacity+1)}
}

// Offer appends val to the buffer if there is room, returning false if the buffer is full.
// Offer never blocks. Only one goroutine may call Offer at a time.
func (b *Buffer[T]) Offer(val T) bool {
	h := b.head.Load()
	next := (h + 1) % uint32(len(b.buf))
	if next == b.tail.Load() {
		return false
	}
	b.buf[h] = val
	b.head.Store(next)
	return true
}

// Poll removes and returns the oldest value in the buffer.
// False will be returned if the buffer is empty.
// Only one goroutine may call Poll at a time.
func (b *Buffer[T]) Poll() (T, bool) {
	t := b.tail.Load()
	if t == b.head.Load() {
		var mt T
		return mt, false
	}
	val := b.buf[t]
	var mt T
	b.buf[t] = mt
	b.tail.Store((t + 1) % uint32(len(b.buf)))
	return val, true
}

// Len reports how many values are currently buffered.
// The result is only exact when neither side is mid-operation.
func (b *Buffer[T]) Len() int {
	h, t := b.head.Load(), b.tail.Load()
	n := uint32(len(b.buf))
	return int((h + n - t) % n)
}

// Cap reports how many values the buffer can hold.
func (b *Buffer[T]) Cap() int {
	return len(b.buf) - 1
}

// Reset discards all buffered values.
// Reset is not safe to call concurrently with Offer or Poll.
func (b *Buffer[T]) Reset() {
	var mt T
	for i := range b.buf {
		b.buf[i] = mt
	}
	b.head.Store(0)
	b.tail.Store(0)
}
