package event

import (
	"fmt"

	"github.com/dshills/windstorm/event/generic"
)

// RenderID identifies render tick events. The payload is a RenderArgs.
const RenderID generic.ID = "loop.render"

// RenderArgs carries the timing and viewport data for one render tick.
// It is the render variant of Event.
type RenderArgs struct {
	// ExtDT is the estimated time, in seconds, from now until the frame
	// becomes visible. Animation can extrapolate by it for smoother motion.
	ExtDT float64

	// Width and Height are the current drawable size.
	Width, Height int
}

func (RenderArgs) loopEvent() {}

// EventID reports RenderID.
func (RenderArgs) EventID() generic.ID { return RenderID }

// Payload returns the RenderArgs value itself.
func (a RenderArgs) Payload() any { return a }

// From constructs another Event variant; see FromID.
func (RenderArgs) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromEvent(id, payload)
}

// String returns a representation like "render 800x600 ext_dt=0.016".
func (a RenderArgs) String() string {
	return fmt.Sprintf("render %dx%d ext_dt=%g", a.Width, a.Height, a.ExtDT)
}

// FromRender constructs an event of the same concrete family as ref,
// carrying a render tick. It reports false when the family cannot
// represent render events.
func FromRender[E generic.Event](args RenderArgs, ref E) (E, bool) {
	return generic.FromPayload(RenderID, args, ref)
}

// OnRender calls fn with the render arguments if e is a render tick.
func OnRender[U any](e generic.Event, fn func(RenderArgs) U) (U, bool) {
	return generic.On(e, RenderID, fn)
}

// Render returns the render arguments if e is a render tick.
func Render(e generic.Event) (RenderArgs, bool) {
	return generic.As[RenderArgs](e, RenderID)
}
