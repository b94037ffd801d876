package canal

import (
	"sync"

	"github.com/adred-codev/canal/boundedlog"
	"github.com/adred-codev/canal/internal/appendlist"
	"github.com/adred-codev/canal/notifier"
)

// DefaultSegmentCapacity is the segment size used by New when no capacity is
// given explicitly.
const DefaultSegmentCapacity = 1024

// segment pairs a BoundedLog with the ordinal position it was created at.
// The index is fixed for the lifetime of the segment — it is assigned once,
// under growthMu, at creation — so global-index arithmetic never needs to
// re-derive a segment's position from the list's current length.
type segment[T any] struct {
	index int
	log   *boundedlog.BoundedLog[T]
}

// Channel is an unbounded, append-only broadcast log composed of a growable
// sequence of fixed-capacity segments. Any number of goroutines may Push
// concurrently; any number of goroutines may Get or WaitFor concurrently.
//
// The zero value is not usable; construct one with New or
// WithSegmentCapacity. A *Channel[T] is safe for concurrent use, and shared
// ownership across goroutines is ordinary Go pointer sharing — there is no
// explicit reference count to manage, unlike the Arc-based design this
// package's semantics were adapted from.
type Channel[T any] struct {
	segmentCapacity int
	segments        *appendlist.List[*segment[T]]
	growthMu        sync.Mutex
	notifier        *notifier.Notifier

	logger       diagnosticLogger
	metricsLabel string
}

// New creates a channel with DefaultSegmentCapacity-sized segments.
func New[T any](opts ...Option) *Channel[T] {
	return WithSegmentCapacity[T](DefaultSegmentCapacity, opts...)
}

// WithSegmentCapacity creates a channel whose segments each hold up to
// capacity values. capacity is clamped to at least 1, matching
// boundedlog.New.
func WithSegmentCapacity[T any](capacity int, opts ...Option) *Channel[T] {
	options := resolveOptions(opts)

	first := &segment[T]{index: 0, log: boundedlog.New[T](capacity)}
	c := &Channel[T]{
		segmentCapacity: first.log.Capacity(),
		segments:        appendlist.New[*segment[T]](first),
		notifier:        notifier.New(),
		logger:          options.logger,
		metricsLabel:    options.metricsLabel,
	}
	return c
}

// Push appends value to the channel and returns its global index. Push
// never fails: the channel grows as needed. Every successful push is
// assigned a unique, contiguous index starting at 0.
func (c *Channel[T]) Push(value T) int {
	if idx, ok := c.tryPush(value); ok {
		c.notifier.Notify()
		return idx
	}

	c.growthMu.Lock()
	if idx, ok := c.tryPush(value); ok {
		c.growthMu.Unlock()
		c.notifier.Notify()
		return idx
	}

	tail := c.segments.Tail()
	next := &segment[T]{index: tail.index + 1, log: boundedlog.New[T](c.segmentCapacity)}
	c.segments.Append(next)
	c.logger.segmentCreated(next.index, c.segmentCapacity)

	local, err := next.log.Push(value)
	c.growthMu.Unlock()
	if err != nil {
		// A freshly created segment can never be full; this would only
		// happen if segmentCapacity were somehow 0, which New/boundedlog.New
		// already rule out.
		panic("canal: newly created segment rejected its first push")
	}

	idx := next.index*c.segmentCapacity + local
	c.notifier.Notify()
	return idx
}

// tryPush attempts to push into the current tail segment without taking the
// growth lock. It reports whether the push succeeded.
func (c *Channel[T]) tryPush(value T) (int, bool) {
	tail := c.segments.Tail()
	local, err := tail.log.Push(value)
	if err != nil {
		return 0, false
	}
	return tail.index*c.segmentCapacity + local, true
}

// Get returns the value at the given global index and true, or the zero
// value and false if index has not yet been produced.
func (c *Channel[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	segIdx, local := index/c.segmentCapacity, index%c.segmentCapacity
	seg, ok := c.segments.Get(segIdx)
	if !ok {
		return zero, false
	}
	return seg.log.Get(local)
}

// WaitFor blocks until index has been produced, then returns its value. If
// the value is already available, WaitFor returns immediately. Readers are
// fully independent: waiting for index k+1 before index k exists is legal
// and simply blocks like any other not-yet-produced index.
func (c *Channel[T]) WaitFor(index int) T {
	for c.notifier.WaitIf(func() bool {
		_, ok := c.Get(index)
		return !ok
	}) {
		// Re-check after a spurious wakeup instead of assuming the
		// predicate is now false.
	}
	v, _ := c.Get(index)
	return v
}

// Len returns the number of values successfully pushed so far.
func (c *Channel[T]) Len() int {
	tail := c.segments.Tail()
	return tail.index*c.segmentCapacity + tail.log.Len()
}

// IsEmpty reports whether the channel holds no values yet.
func (c *Channel[T]) IsEmpty() bool {
	return c.Len() == 0
}

// SegmentCapacity returns the fixed capacity of each segment.
func (c *Channel[T]) SegmentCapacity() int {
	return c.segmentCapacity
}

// segmentCount returns the current number of segments in the channel.
func (c *Channel[T]) segmentCount() int {
	return c.segments.Len()
}
