package input

import (
	"strconv"

	"github.com/dshills/windstorm/event/generic"
)

// TextID identifies text input events. The payload is a string.
const TextID generic.ID = "input.text"

// Text is the text-input variant of Input. It carries the characters
// typed, after any layout and input-method processing by the backend.
type Text struct {
	Text string
}

func (Text) inputEvent() {}

// EventID reports TextID.
func (Text) EventID() generic.ID { return TextID }

// Payload returns the typed text as a string.
func (t Text) Payload() any { return t.Text }

// From constructs another Input variant; see FromID.
func (Text) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns a representation like `text "a"`.
func (t Text) String() string { return "text " + strconv.Quote(t.Text) }

// FromText constructs an event of the same concrete family as ref,
// carrying typed text.
func FromText[E generic.Event](text string, ref E) (E, bool) {
	return generic.FromPayload(TextID, text, ref)
}

// OnText calls fn with the typed text if e is a text event.
func OnText[U any](e generic.Event, fn func(string) U) (U, bool) {
	return generic.On(e, TextID, fn)
}

// TextArgs returns the typed text if e is a text event.
func TextArgs(e generic.Event) (string, bool) {
	return generic.As[string](e, TextID)
}
