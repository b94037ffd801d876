// Package boundedlog provides a fixed-capacity, lock-free, append-only log.
//
// A BoundedLog reserves a slot for each push with a single atomic
// fetch-and-add, then writes the value into that slot exactly once. Reads
// never take a lock: a value becomes visible to Get as soon as the reserving
// push's store completes, and once observed it never changes.
package boundedlog

import "sync/atomic"

// BoundedLog is a fixed-capacity, thread-safe, append-only sequence of
// values. No push ever blocks the caller; once the log is full, further
// pushes fail with CapacityExceededError and hand the rejected value back.
//
// The zero value is not usable; construct one with New.
type BoundedLog[T any] struct {
	capacity int
	length   atomic.Int64
	slots    []atomic.Pointer[T]
}

// New creates a log with room for capacity items. A capacity below 1 is
// coerced to 1 — a bounded log always has at least one slot.
func New[T any](capacity int) *BoundedLog[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedLog[T]{
		capacity: capacity,
		slots:    make([]atomic.Pointer[T], capacity),
	}
}

// Capacity returns the log's fixed capacity. It never changes after
// construction.
func (l *BoundedLog[T]) Capacity() int {
	return l.capacity
}

// Len returns the number of values currently readable through Get. It is
// the reservation counter clamped to Capacity, so it never exceeds it even
// when pushes have raced past a full log.
func (l *BoundedLog[T]) Len() int {
	n := int(l.length.Load())
	if n > l.capacity {
		return l.capacity
	}
	if n < 0 {
		return 0
	}
	return n
}

// IsEmpty reports whether the log holds no values yet.
func (l *BoundedLog[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Get returns the value at index and true, or the zero value and false if
// index is not yet (or never will be, once full and unfilled) populated.
//
// A successful Get(index) for a given index always returns the same value,
// regardless of which goroutine calls it or how many times.
func (l *BoundedLog[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= l.Len() {
		return zero, false
	}
	v := l.slots[index].Load()
	if v == nil {
		// The reservation for this slot has completed but the publishing
		// store has not yet become visible to this goroutine. Treat it the
		// same as "not yet produced" rather than returning a torn value.
		return zero, false
	}
	return *v, true
}

// Push reserves the next slot and stores value into it. It returns the
// index the value was stored at, or a *CapacityExceededError[T] carrying
// value back to the caller if the log is already full.
func (l *BoundedLog[T]) Push(value T) (int, error) {
	token := int(l.length.Add(1) - 1)
	if token >= l.capacity {
		return 0, &CapacityExceededError[T]{Value: value}
	}
	l.slots[token].Store(&value)
	return token, nil
}
