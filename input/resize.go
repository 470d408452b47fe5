package input

import (
	"fmt"

	"github.com/dshills/windstorm/event/generic"
)

// ResizeID identifies window resize events. The payload is a Resize.
const ResizeID generic.ID = "input.resize"

// Resize is the window-resize variant of Input.
type Resize struct {
	// Width and Height are the new window size in pixels (or cells, for
	// terminal backends).
	Width, Height int
}

func (Resize) inputEvent() {}

// EventID reports ResizeID.
func (Resize) EventID() generic.ID { return ResizeID }

// Payload returns the Resize value itself.
func (r Resize) Payload() any { return r }

// From constructs another Input variant; see FromID.
func (Resize) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromInput(id, payload)
}

// String returns a representation like "resize 80x24".
func (r Resize) String() string {
	return fmt.Sprintf("resize %dx%d", r.Width, r.Height)
}

// FromResize constructs an event of the same concrete family as ref,
// carrying the new window size.
func FromResize[E generic.Event](width, height int, ref E) (E, bool) {
	return generic.FromPayload(ResizeID, Resize{Width: width, Height: height}, ref)
}

// OnResize calls fn with the new size if e is a resize event.
func OnResize[U any](e generic.Event, fn func(Resize) U) (U, bool) {
	return generic.On(e, ResizeID, fn)
}

// ResizeArgs returns the new size if e is a resize event.
func ResizeArgs(e generic.Event) (Resize, bool) {
	return generic.As[Resize](e, ResizeID)
}
