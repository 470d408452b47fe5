// Package backend defines the collaborator interface a window system must
// implement to feed the event abstraction, plus two implementations: Null,
// an inert in-memory backend for headless use and tests, and Terminal, a
// tcell-based adapter that translates terminal events into input events.
//
// A backend produces raw input.Input values; the loop package turns them
// into the top-level event stream. Application code should depend on the
// Backend interface, never on a concrete implementation.
package backend
