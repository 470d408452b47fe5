package backend

import (
	"sync"

	"github.com/dshills/windstorm/input"
)

// Backend is the contract a window-system adapter implements.
//
// PollEvent blocks until the next raw input event is available and reports
// false once the backend has shut down. A backend is the only producer of
// input events; the modifier tracker and the event loop consume them
// without knowing the concrete backend type.
type Backend interface {
	// Init prepares the backend for use.
	Init() error

	// Shutdown releases backend resources. PollEvent unblocks and
	// reports false afterwards. Shutdown is idempotent.
	Shutdown()

	// Size returns the current drawable size.
	Size() (width, height int)

	// PollEvent blocks for the next input event.
	PollEvent() (input.Input, bool)

	// PostEvent injects a synthetic event into the queue.
	PostEvent(in input.Input) error
}

// Null is a window-less backend: it has a fixed size and delivers only
// events posted to it. It stands in for a real window system in headless
// programs and tests.
type Null struct {
	width, height int

	mu     sync.Mutex
	closed bool
	events chan input.Input
}

// NewNull creates a Null backend reporting the given size.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		events: make(chan input.Input, 128),
	}
}

// Init implements Backend. It never fails.
func (n *Null) Init() error { return nil }

// Shutdown implements Backend. Pending events are discarded.
func (n *Null) Shutdown() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.closed {
		n.closed = true
		close(n.events)
	}
}

// Size implements Backend.
func (n *Null) Size() (int, int) {
	return n.width, n.height
}

// PollEvent implements Backend.
func (n *Null) PollEvent() (input.Input, bool) {
	in, ok := <-n.events
	return in, ok
}

// PostEvent implements Backend. It reports ErrClosed after Shutdown and
// ErrQueueFull when the queue cannot accept more events.
func (n *Null) PostEvent(in input.Input) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrClosed
	}
	select {
	case n.events <- in:
		return nil
	default:
		return ErrQueueFull
	}
}
