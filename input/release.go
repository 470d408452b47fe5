package input

import "github.com/dshills/windstorm/event/generic"

// ReleaseID identifies button release events. The payload is a Button.
const ReleaseID generic.ID = "input.button.release"

// Release is the button-release variant of Input.
type Release struct {
	// Button is the button that was released.
	Button Button
}

func (Release) inputEvent() {}

// EventID reports ReleaseID.
func (Release) EventID() generic.ID { return ReleaseID }

// Payload returns the released Button.
func (r Release) Payload() any { return r.Button }

// From constructs another Input variant; see FromID.
func (Release) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns a representation like "release A".
func (r Release) String() string { return "release " + r.Button.String() }

// FromRelease constructs an event of the same concrete family as ref,
// carrying a release of button. It reports false when the family cannot
// represent release events.
func FromRelease[E generic.Event](button Button, ref E) (E, bool) {
	return generic.FromPayload(ReleaseID, button, ref)
}

// OnRelease calls fn with the released button if e is a release event.
func OnRelease[U any](e generic.Event, fn func(Button) U) (U, bool) {
	return generic.On(e, ReleaseID, fn)
}

// ReleaseArgs returns the released button if e is a release event.
func ReleaseArgs(e generic.Event) (Button, bool) {
	return generic.As[Button](e, ReleaseID)
}
