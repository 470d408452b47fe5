// Package generic defines the identity-tagged event abstraction that the
// rest of the library is built on.
//
// An event container implements the Event interface: it reports the kind of
// payload it currently carries via EventID, exposes the payload via Payload,
// and can construct a sibling container carrying a different payload via
// From. Everything else, the typed capabilities in the input and event
// packages included, is derived generically from those three operations, so
// a new container type gains every capability the moment it implements Event.
//
// Kind identities are hierarchical dotted names, assigned once per payload
// kind. Packages defining new payload kinds declare their own ID constants;
// the values are part of their public contract and must never change.
package generic
