// Package loop drives the top-level event stream: it interleaves raw
// backend input with fixed-timestep update ticks and frame-capped render
// ticks, delivering everything as event.Event values from a single Next
// call.
//
// The loop ends when its backend shuts down. Next is not safe for
// concurrent use; one goroutine owns the event stream.
package loop
