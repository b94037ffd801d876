package canal

// Sender is a producer-side handle onto a shared Channel.
type Sender[T any] struct {
	channel *Channel[T]
}

// Send pushes value onto the underlying channel. See Channel.Push.
func (s Sender[T]) Send(value T) int {
	return s.channel.Push(value)
}

// Channel returns the underlying shared channel.
func (s Sender[T]) Channel() *Channel[T] {
	return s.channel
}

// Receiver is a consumer-side handle onto a shared Channel.
type Receiver[T any] struct {
	channel *Channel[T]
}

// Recv reads the value at index without blocking. See Channel.Get.
func (r Receiver[T]) Recv(index int) (T, bool) {
	return r.channel.Get(index)
}

// WaitFor blocks until index has been produced, then returns its value. See
// Channel.WaitFor.
func (r Receiver[T]) WaitFor(index int) T {
	return r.channel.WaitFor(index)
}

// Channel returns the underlying shared channel.
func (r Receiver[T]) Channel() *Channel[T] {
	return r.channel
}

// Open returns a Sender/Receiver pair sharing this channel. Either handle
// may outlive the other without corrupting state.
func (c *Channel[T]) Open() (Sender[T], Receiver[T]) {
	return Sender[T]{channel: c}, Receiver[T]{channel: c}
}
