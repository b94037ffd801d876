package canal

import "iter"

// Iterator walks a Channel from a fixed starting index without blocking.
// Next reports false once it catches up to the channel's current length;
// calling it again later, after more values have been pushed, resumes from
// where it left off.
//
// An Iterator holds a pointer back to its Channel, so the channel (and
// every segment it has ever grown) remains reachable for as long as the
// iterator does.
type Iterator[T any] struct {
	channel *Channel[T]
	next    int
}

// Iter returns an Iterator starting at index 0.
func (c *Channel[T]) Iter() *Iterator[T] {
	return &Iterator[T]{channel: c}
}

// IterFrom returns an Iterator starting at the given index.
func (c *Channel[T]) IterFrom(index int) *Iterator[T] {
	return &Iterator[T]{channel: c, next: index}
}

// Next returns the next value and true, or the zero value and false if it
// has not been produced yet.
func (it *Iterator[T]) Next() (T, bool) {
	v, ok := it.channel.Get(it.next)
	if !ok {
		var zero T
		return zero, false
	}
	it.next++
	return v, true
}

// Index reports the index Next will read from.
func (it *Iterator[T]) Index() int {
	return it.next
}

// BlockingIterator walks a Channel from a fixed starting index, parking the
// calling goroutine when it catches up to the channel's current length
// instead of reporting absence.
type BlockingIterator[T any] struct {
	channel *Channel[T]
	next    int
}

// BlockingIter returns a BlockingIterator starting at index 0.
func (c *Channel[T]) BlockingIter() *BlockingIterator[T] {
	return &BlockingIterator[T]{channel: c}
}

// BlockingIterFrom returns a BlockingIterator starting at the given index.
func (c *Channel[T]) BlockingIterFrom(index int) *BlockingIterator[T] {
	return &BlockingIterator[T]{channel: c, next: index}
}

// Next blocks until the next value is available, then returns it.
func (it *BlockingIterator[T]) Next() T {
	v := it.channel.WaitFor(it.next)
	it.next++
	return v
}

// Index reports the index Next will read from.
func (it *BlockingIterator[T]) Index() int {
	return it.next
}

// All returns a range-over-func sequence that blocks for each successive
// value starting at index 0. The sequence never ends on its own; a
// range loop over it must break explicitly to stop consuming.
func (c *Channel[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := c.BlockingIter()
		for {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
