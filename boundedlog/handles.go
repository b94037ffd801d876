package boundedlog

// Sender is a producer-side handle onto a shared BoundedLog.
type Sender[T any] struct {
	log *BoundedLog[T]
}

// Send pushes value onto the underlying log. See BoundedLog.Push.
func (s Sender[T]) Send(value T) (int, error) {
	return s.log.Push(value)
}

// Log returns the underlying shared log.
func (s Sender[T]) Log() *BoundedLog[T] {
	return s.log
}

// Receiver is a consumer-side handle onto a shared BoundedLog.
type Receiver[T any] struct {
	log *BoundedLog[T]
}

// Recv reads the value at index. See BoundedLog.Get.
func (r Receiver[T]) Recv(index int) (T, bool) {
	return r.log.Get(index)
}

// Log returns the underlying shared log.
func (r Receiver[T]) Log() *BoundedLog[T] {
	return r.log
}

// Open creates a log of the given capacity and returns a Sender/Receiver
// pair sharing it. Either handle may outlive the other without corrupting
// state.
func Open[T any](capacity int) (Sender[T], Receiver[T]) {
	log := New[T](capacity)
	return Sender[T]{log: log}, Receiver[T]{log: log}
}
