package generic

import "fmt"

// ID identifies one event-payload kind. IDs are compared for equality only;
// the dotted-name structure exists for readability and collision avoidance
// (e.g. "input.button.press"). An ID is assigned to exactly one payload type.
type ID string

// String returns the identity name.
func (id ID) String() string {
	return string(id)
}

// Event is the contract a concrete event container implements.
//
// A container carries exactly one payload at a time. EventID reports the
// kind of that payload, Payload returns it, and From builds a new container
// of the same concrete family carrying a different payload. A family that
// cannot represent a kind reports false from From; that is normal control
// flow, not an error.
type Event interface {
	// EventID reports the kind of the carried payload.
	EventID() ID

	// Payload returns the carried payload. The dynamic type is determined
	// by EventID and is identical for every container carrying that kind.
	Payload() any

	// From constructs a new container of the same concrete family,
	// carrying payload tagged with id. It reports false when the family
	// cannot represent that kind, or when payload is not the type
	// registered for id.
	From(id ID, payload any) (Event, bool)
}

// FromPayload constructs a container of the same concrete type as ref,
// carrying payload tagged with id. The reference container supplies the
// concrete family to reconstruct; its own payload is ignored. It reports
// false when the family cannot represent the kind.
func FromPayload[E Event](id ID, payload any, ref E) (E, bool) {
	var zero E
	ev, ok := ref.From(id, payload)
	if !ok {
		return zero, false
	}
	e, ok := ev.(E)
	if !ok {
		return zero, false
	}
	return e, true
}

// As extracts the payload as type P if e carries kind id. It reports false
// when e carries a different kind.
//
// A container whose EventID reports id but whose payload is not a P is in
// violation of the Event contract: identity and payload are out of sync.
// As panics in that case rather than return a wrong answer; derived state
// (such as a modifier tracker) would silently corrupt otherwise. The
// containers shipped with this module store identity and payload as one
// value, making the panic unreachable for them.
func As[P any](e Event, id ID) (P, bool) {
	var zero P
	if e.EventID() != id {
		return zero, false
	}
	p, ok := e.Payload().(P)
	if !ok {
		panic(fmt.Sprintf("generic: container %T reports %q but payload is %T, not %T", e, id, e.Payload(), zero))
	}
	return p, true
}

// On calls fn with the payload if e carries kind id, returning fn's result.
// It reports false, without calling fn, when e carries a different kind.
// Payload/identity desync panics exactly as in As.
func On[P, U any](e Event, id ID, fn func(P) U) (U, bool) {
	p, ok := As[P](e, id)
	if !ok {
		var zero U
		return zero, false
	}
	return fn(p), true
}
