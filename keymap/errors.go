package keymap

import "errors"

// Sentinel errors for keymap parsing and configuration.
var (
	// ErrInvalidChord is returned when a chord specification cannot be
	// parsed.
	ErrInvalidChord = errors.New("invalid chord")

	// ErrMissingAction is returned when a configured binding has no
	// action.
	ErrMissingAction = errors.New("binding has no action")
)
