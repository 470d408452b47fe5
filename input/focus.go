package input

import "github.com/dshills/windstorm/event/generic"

// FocusID identifies focus change events. The payload is a bool: true for
// focus gained, false for focus lost.
const FocusID generic.ID = "input.focus"

// Focus is the focus-change variant of Input.
type Focus struct {
	// Focused is true when the window gained focus, false when it lost it.
	Focused bool
}

func (Focus) inputEvent() {}

// EventID reports FocusID.
func (Focus) EventID() generic.ID { return FocusID }

// Payload returns the focus state as a bool.
func (f Focus) Payload() any { return f.Focused }

// From constructs another Input variant; see FromID.
func (Focus) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns "focus gained" or "focus lost".
func (f Focus) String() string {
	if f.Focused {
		return "focus gained"
	}
	return "focus lost"
}

// FromFocus constructs an event of the same concrete family as ref,
// carrying a focus change.
func FromFocus[E generic.Event](focused bool, ref E) (E, bool) {
	return generic.FromPayload(FocusID, focused, ref)
}

// OnFocus calls fn with the focus state if e is a focus event.
func OnFocus[U any](e generic.Event, fn func(bool) U) (U, bool) {
	return generic.On(e, FocusID, fn)
}

// FocusArgs returns the focus state if e is a focus event.
func FocusArgs(e generic.Event) (bool, bool) {
	return generic.As[bool](e, FocusID)
}
