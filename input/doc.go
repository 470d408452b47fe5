// Package input provides backend-agnostic input data: keyboard keys with
// their SDL keycodes, button identities for keyboard, mouse and controller
// sources, the modifier-key bitset with its event-stream tracker, and the
// Input union carrying one raw backend event.
//
// Key and Button values are pure data with no error paths: decoding an
// unrecognized keycode yields KeyUnknown rather than failing. The Input
// union implements generic.Event, so every typed capability in this
// package and in the event package applies to it.
package input
