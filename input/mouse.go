package input

import (
	"fmt"

	"github.com/dshills/windstorm/event/generic"
)

// Mouse motion identities. Each kind's payload is its own variant struct.
const (
	// MouseCursorID identifies absolute cursor position events.
	MouseCursorID generic.ID = "input.mouse.cursor"

	// MouseRelativeID identifies relative cursor motion events.
	MouseRelativeID generic.ID = "input.mouse.relative"

	// MouseScrollID identifies scroll wheel events.
	MouseScrollID generic.ID = "input.mouse.scroll"
)

// MouseCursor is the absolute cursor position variant of Input.
// Coordinates are in window space.
type MouseCursor struct {
	X, Y float64
}

func (MouseCursor) inputEvent() {}

// EventID reports MouseCursorID.
func (MouseCursor) EventID() generic.ID { return MouseCursorID }

// Payload returns the MouseCursor value itself.
func (m MouseCursor) Payload() any { return m }

// From constructs another Input variant; see FromID.
func (MouseCursor) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns a representation like "cursor (3, 4)".
func (m MouseCursor) String() string {
	return fmt.Sprintf("cursor (%g, %g)", m.X, m.Y)
}

// MouseRelative is the relative cursor motion variant of Input.
type MouseRelative struct {
	DX, DY float64
}

func (MouseRelative) inputEvent() {}

// EventID reports MouseRelativeID.
func (MouseRelative) EventID() generic.ID { return MouseRelativeID }

// Payload returns the MouseRelative value itself.
func (m MouseRelative) Payload() any { return m }

// From constructs another Input variant; see FromID.
func (MouseRelative) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns a representation like "relative (1, -2)".
func (m MouseRelative) String() string {
	return fmt.Sprintf("relative (%g, %g)", m.DX, m.DY)
}

// MouseScroll is the scroll wheel variant of Input. DX is horizontal
// scroll, DY vertical; positive DY scrolls up.
type MouseScroll struct {
	DX, DY float64
}

func (MouseScroll) inputEvent() {}

// EventID reports MouseScrollID.
func (MouseScroll) EventID() generic.ID { return MouseScrollID }

// Payload returns the MouseScroll value itself.
func (m MouseScroll) Payload() any { return m }

// From constructs another Input variant; see FromID.
func (MouseScroll) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns a representation like "scroll (0, 1)".
func (m MouseScroll) String() string {
	return fmt.Sprintf("scroll (%g, %g)", m.DX, m.DY)
}

// FromMouseCursor constructs an event of the same concrete family as ref,
// carrying an absolute cursor position.
func FromMouseCursor[E generic.Event](x, y float64, ref E) (E, bool) {
	return generic.FromPayload(MouseCursorID, MouseCursor{X: x, Y: y}, ref)
}

// OnMouseCursor calls fn with the cursor position if e is a cursor event.
func OnMouseCursor[U any](e generic.Event, fn func(MouseCursor) U) (U, bool) {
	return generic.On(e, MouseCursorID, fn)
}

// MouseCursorArgs returns the cursor position if e is a cursor event.
func MouseCursorArgs(e generic.Event) (MouseCursor, bool) {
	return generic.As[MouseCursor](e, MouseCursorID)
}

// FromMouseRelative constructs an event of the same concrete family as
// ref, carrying relative cursor motion.
func FromMouseRelative[E generic.Event](dx, dy float64, ref E) (E, bool) {
	return generic.FromPayload(MouseRelativeID, MouseRelative{DX: dx, DY: dy}, ref)
}

// OnMouseRelative calls fn with the motion if e is a relative motion event.
func OnMouseRelative[U any](e generic.Event, fn func(MouseRelative) U) (U, bool) {
	return generic.On(e, MouseRelativeID, fn)
}

// MouseRelativeArgs returns the motion if e is a relative motion event.
func MouseRelativeArgs(e generic.Event) (MouseRelative, bool) {
	return generic.As[MouseRelative](e, MouseRelativeID)
}

// FromMouseScroll constructs an event of the same concrete family as ref,
// carrying scroll motion.
func FromMouseScroll[E generic.Event](dx, dy float64, ref E) (E, bool) {
	return generic.FromPayload(MouseScrollID, MouseScroll{DX: dx, DY: dy}, ref)
}

// OnMouseScroll calls fn with the scroll motion if e is a scroll event.
func OnMouseScroll[U any](e generic.Event, fn func(MouseScroll) U) (U, bool) {
	return generic.On(e, MouseScrollID, fn)
}

// MouseScrollArgs returns the scroll motion if e is a scroll event.
func MouseScrollArgs(e generic.Event) (MouseScroll, bool) {
	return generic.As[MouseScroll](e, MouseScrollID)
}
