// Package event provides the top-level event union delivered by the event
// loop, combining loop lifecycle ticks (render, update) with raw backend
// input.
//
// Event is itself a generic.Event container: the loop ticks RenderArgs and
// UpdateArgs are variants directly, and the Input variant wraps an
// input.Input while aliasing its identity and payload. Extraction
// capabilities therefore see through the wrapper: input.PressArgs applied
// to an event.Input holding a press reports the button, and FromPayload
// with an Event reference can reconstruct any loop or input kind.
package event
