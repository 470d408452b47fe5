package input

import "github.com/dshills/windstorm/event/generic"

// PressID identifies button press events. The payload is a Button.
const PressID generic.ID = "input.button.press"

// Press is the button-press variant of Input.
type Press struct {
	// Button is the button that was pressed.
	Button Button
}

func (Press) inputEvent() {}

// EventID reports PressID.
func (Press) EventID() generic.ID { return PressID }

// Payload returns the pressed Button.
func (p Press) Payload() any { return p.Button }

// From constructs another Input variant; see FromID.
func (Press) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns a representation like "press A".
func (p Press) String() string { return "press " + p.Button.String() }

// FromPress constructs an event of the same concrete family as ref,
// carrying a press of button. It reports false when the family cannot
// represent press events.
func FromPress[E generic.Event](button Button, ref E) (E, bool) {
	return generic.FromPayload(PressID, button, ref)
}

// OnPress calls fn with the pressed button if e is a press event.
func OnPress[U any](e generic.Event, fn func(Button) U) (U, bool) {
	return generic.On(e, PressID, fn)
}

// PressArgs returns the pressed button if e is a press event.
func PressArgs(e generic.Event) (Button, bool) {
	return generic.As[Button](e, PressID)
}
