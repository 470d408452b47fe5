package input

import (
	"fmt"

	"github.com/dshills/windstorm/event/generic"
)

// Input is one raw event produced by a window backend. It is a closed
// union over the kinds a backend can emit: button press and release,
// mouse cursor/relative/scroll motion, text input, window resize, and
// focus change.
//
// Every variant implements generic.Event, so the typed capabilities in
// this package (PressArgs, OnFocus, ...) and any third-party capability
// built on generic.Event work on Input values directly.
type Input interface {
	generic.Event
	fmt.Stringer

	// inputEvent restricts implementations to this package.
	inputEvent()
}

// FromID constructs the Input variant for the given kind and payload. It
// reports false for kinds outside the union (for example render ticks) and
// for payloads of the wrong type.
func FromID(id generic.ID, payload any) (Input, bool) {
	switch id {
	case PressID:
		if b, ok := payload.(Button); ok {
			return Press{Button: b}, true
		}
	case ReleaseID:
		if b, ok := payload.(Button); ok {
			return Release{Button: b}, true
		}
	case MouseCursorID:
		if m, ok := payload.(MouseCursor); ok {
			return m, true
		}
	case MouseRelativeID:
		if m, ok := payload.(MouseRelative); ok {
			return m, true
		}
	case MouseScrollID:
		if m, ok := payload.(MouseScroll); ok {
			return m, true
		}
	case TextID:
		if s, ok := payload.(string); ok {
			return Text{Text: s}, true
		}
	case ResizeID:
		if r, ok := payload.(Resize); ok {
			return r, true
		}
	case FocusID:
		if f, ok := payload.(bool); ok {
			return Focus{Focused: f}, true
		}
	}
	return nil, false
}

// fromInput adapts FromID to the generic.Event From signature. All Input
// variants share it, so constructing from any variant stays inside the
// Input family.
func fromInput(id generic.ID, payload any) (generic.Event, bool) {
	in, ok := FromID(id, payload)
	if !ok {
		return nil, false
	}
	return in, true
}
