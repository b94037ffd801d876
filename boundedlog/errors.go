package boundedlog

import "fmt"

// CapacityExceededError is returned by Push when the log has no remaining
// slots. It carries the rejected value back to the caller so a producer can
// retry against a new log or discard the value — Push never drops data
// silently.
type CapacityExceededError[T any] struct {
	// Value is the value that could not be stored.
	Value T
}

func (e *CapacityExceededError[T]) Error() string {
	return fmt.Sprintf("boundedlog: capacity exceeded, rejected value %v", e.Value)
}
