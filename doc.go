// Package canal provides an in-process, multi-producer/multi-consumer
// append-only broadcast log.
//
// A Channel is an unbounded sequence of values, indexed from zero, that any
// number of goroutines may append to concurrently and any number of
// goroutines may read from — including blocking reads that park a goroutine
// until a given index has been produced. It is built from two smaller
// pieces, both usable on their own:
//
//   - boundedlog.BoundedLog[T]: a fixed-capacity, lock-free append-only log.
//   - notifier.Notifier: a condition-variable-based broadcast primitive that
//     lets a reader test a predicate and, if it is still true, park
//     race-free against a concurrent writer.
//
// Channel composes a growable linked list of BoundedLog segments with a
// Notifier: pushes go to the current tail segment and, once it fills,
// allocate a new one under a serializing mutex; reads decompose a global
// index into a segment and a local index and never block unless the caller
// asks for a blocking wait.
package canal
