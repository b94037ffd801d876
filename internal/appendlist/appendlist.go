// Package appendlist provides a thread-safe, singly-linked, append-only
// list. Appending is serialized by a mutex so the linkage can never tear;
// reading is lock-free and accelerated by a small advisory lookup cache.
package appendlist

import (
	"sync"
	"sync/atomic"
)

// cacheSize bounds the lookup cache. It is small and fixed: the cache is a
// hint, not a storage tier, so it only needs to cover the handful of most
// recently appended-to or looked-up positions.
const cacheSize = 32

type node[E any] struct {
	value E
	next  atomic.Pointer[node[E]]
}

// cacheEntry binds a logical index to the node that holds it. Entries are
// replaced atomically as a whole so a reader never observes an index paired
// with the wrong node.
type cacheEntry[E any] struct {
	index int
	node  *node[E]
}

// List is a thread-safe, append-only linked list. Nodes are never freed
// except when the list itself becomes unreachable, so a node reached while
// walking the list remains valid for the lifetime of the list.
//
// The zero value is not usable; construct one with New.
type List[E any] struct {
	head, tail atomic.Pointer[node[E]]
	mu         sync.Mutex // serializes Append; guards length
	length     int

	cache  [cacheSize]atomic.Pointer[cacheEntry[E]]
	cursor atomic.Uint32
}

// New creates a list containing a single element, first.
func New[E any](first E) *List[E] {
	n := &node[E]{value: first}
	l := &List[E]{length: 1}
	l.head.Store(n)
	l.tail.Store(n)
	l.putCache(0, n)
	return l
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.length
}

// Append adds value to the back of the list. Appending is O(1) and is
// serialized against other appenders by an internal mutex; Get never blocks
// on it.
func (l *List[E]) Append(value E) {
	n := &node[E]{value: value}

	l.mu.Lock()
	tail := l.tail.Load()
	tail.next.Store(n)
	l.tail.Store(n)
	l.length++
	index := l.length - 1
	l.mu.Unlock()

	l.putCache(index, n)
}

// Get returns the element at index and true, or the zero value and false if
// index is out of bounds. A hit in the lookup cache makes this O(1); a miss
// walks the list from head, which is O(n) in the worst case.
func (l *List[E]) Get(index int) (E, bool) {
	var zero E
	if index < 0 {
		return zero, false
	}

	for i := range l.cache {
		if e := l.cache[i].Load(); e != nil && e.index == index {
			return e.node.value, true
		}
	}

	cur := l.head.Load()
	for i := 0; i < index; i++ {
		next := cur.next.Load()
		if next == nil {
			return zero, false
		}
		cur = next
	}

	l.putCache(index, cur)
	return cur.value, true
}

// Tail returns the most recently appended element. Freshness is not
// guaranteed against a concurrent Append racing this call — any tail that
// existed at some point since construction is a valid answer — but the
// returned element's own state is always fully formed.
func (l *List[E]) Tail() E {
	return l.tail.Load().value
}

func (l *List[E]) putCache(index int, n *node[E]) {
	slot := l.cursor.Add(1) - 1
	l.cache[slot%cacheSize].Store(&cacheEntry[E]{index: index, node: n})
}
