package backend

import "errors"

// Sentinel errors for backends.
var (
	// ErrClosed is returned when an operation is attempted on a backend
	// that has been shut down.
	ErrClosed = errors.New("backend is closed")

	// ErrQueueFull is returned when a posted event cannot be queued.
	ErrQueueFull = errors.New("backend event queue is full")

	// ErrUnsupportedEvent is returned when a backend cannot represent a
	// posted event.
	ErrUnsupportedEvent = errors.New("backend cannot post this event kind")
)
