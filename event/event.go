package event

import (
	"fmt"

	"github.com/dshills/windstorm/event/generic"
	"github.com/dshills/windstorm/input"
)

// Event is one event delivered by the event loop: a render tick, an
// update tick, or a raw backend input. It is a closed union; the variants
// are RenderArgs, UpdateArgs and Input.
type Event interface {
	generic.Event
	fmt.Stringer

	// loopEvent restricts implementations to this package.
	loopEvent()
}

// Input is the backend-input variant of Event. It aliases the wrapped
// input.Input: EventID and Payload report the inner event's kind and
// payload, so extraction capabilities see through the wrapper.
type Input struct {
	Input input.Input
}

func (Input) loopEvent() {}

// EventID reports the wrapped event's kind.
func (i Input) EventID() generic.ID { return i.Input.EventID() }

// Payload returns the wrapped event's payload.
func (i Input) Payload() any { return i.Input.Payload() }

// From constructs another Event variant; see FromID.
func (Input) From(id generic.ID, payload any) (generic.Event, bool) {
	return fromEvent(id, payload)
}

// String returns the wrapped event's representation.
func (i Input) String() string { return i.Input.String() }

// FromID constructs the Event variant for the given kind and payload:
// RenderArgs for RenderID, UpdateArgs for UpdateID, and a wrapped Input
// for every kind the input union supports. It reports false for kinds
// outside those sets and for payloads of the wrong type.
func FromID(id generic.ID, payload any) (Event, bool) {
	switch id {
	case RenderID:
		if args, ok := payload.(RenderArgs); ok {
			return args, true
		}
		return nil, false
	case UpdateID:
		if args, ok := payload.(UpdateArgs); ok {
			return args, true
		}
		return nil, false
	}
	in, ok := input.FromID(id, payload)
	if !ok {
		return nil, false
	}
	return Input{Input: in}, true
}

// fromEvent adapts FromID to the generic.Event From signature, shared by
// all Event variants.
func fromEvent(id generic.ID, payload any) (generic.Event, bool) {
	e, ok := FromID(id, payload)
	if !ok {
		return nil, false
	}
	return e, true
}

// Wrap lifts a raw backend input into the Event union.
func Wrap(in input.Input) Event {
	return Input{Input: in}
}
