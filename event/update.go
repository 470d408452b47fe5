package event

import (
	"fmt"

	"github.com/dshills/windstorm/event/generic"
)

// UpdateID identifies update tick events. The payload is an UpdateArgs.
const UpdateID generic.ID = "loop.update"

// UpdateArgs carries the timing data for one fixed-timestep update tick.
// It is the update variant of Event.
type UpdateArgs struct {
	// DT is the fixed timestep in seconds.
	DT float64
}

func (UpdateArgs) loopEvent() {}

// EventID reports UpdateID.
func (UpdateArgs) EventID() generic.ID { return UpdateID }

// Payload returns the UpdateArgs value itself.
func (a UpdateArgs) Payload() any { return a }

// From constructs another Event variant; see FromID.
func (UpdateArgs) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromEvent(id, payload)
}

// String returns a representation like "update dt=0.0083".
func (a UpdateArgs) String() string {
	return fmt.Sprintf("update dt=%g", a.DT)
}

// FromUpdate constructs an event of the same concrete family as ref,
// carrying an update tick. It reports false when the family cannot
// represent update events.
func FromUpdate[E generic.Event](args UpdateArgs, ref E) (E, bool) {
	return generic.FromPayload(UpdateID, args, ref)
}

// OnUpdate calls fn with the update arguments if e is an update tick.
func OnUpdate[U any](e generic.Event, fn func(UpdateArgs) U) (U, bool) {
	return generic.On(e, UpdateID, fn)
}

// Update returns the update arguments if e is an update tick.
func Update(e generic.Event) (UpdateArgs, bool) {
	return generic.As[UpdateArgs](e, UpdateID)
}
