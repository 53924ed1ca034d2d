package command

// Bus is the single asynchronous channel from view nodes to the application
// root. It is safe for concurrent senders; the event loop is the only
// receiver.
type Bus struct {
	ch chan Command
}

// NewBus returns a bus with the given buffer size.
func NewBus(buffer int) *Bus {
	return &Bus{ch: make(chan Command, buffer)}
}

// Send queues a command for the root. It blocks only when the buffer is
// full, which bounds memory without dropping user-visible requests.
func (b *Bus) Send(c Command) {
	b.ch <- c
}

// C exposes the receive side for the event loop.
func (b *Bus) C() <-chan Command { return b.ch }

// TrySend queues a command without blocking and reports whether it fit.
func (b *Bus) TrySend(c Command) bool {
	select {
	case b.ch <- c:
		return true
	default:
		return false
	}
}
