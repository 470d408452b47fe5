package input

import (
	"strings"

	"github.com/dshills/windstorm/event/generic"
)

// ModifierKey is a bitset of held modifier keys. The bit layout is fixed:
// Ctrl=1, Shift=2, Alt=4, Gui=8. Serialized values keep this layout.
type ModifierKey uint8

// Single modifiers.
const (
	// ModNone indicates no modifier held.
	ModNone ModifierKey = 0

	// ModCtrl indicates the Control key.
	ModCtrl ModifierKey = 1

	// ModShift indicates the Shift key.
	ModShift ModifierKey = 2

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt ModifierKey = 4

	// ModGui indicates the Gui key (Cmd on macOS, Win on Windows).
	ModGui ModifierKey = 8
)

// Named combinations.
const (
	ModCtrlShift       = ModCtrl | ModShift
	ModCtrlAlt         = ModCtrl | ModAlt
	ModCtrlGui         = ModCtrl | ModGui
	ModCtrlShiftAlt    = ModCtrl | ModShift | ModAlt
	ModCtrlShiftGui    = ModCtrl | ModShift | ModGui
	ModCtrlAltGui      = ModCtrl | ModAlt | ModGui
	ModCtrlShiftAltGui = ModCtrl | ModShift | ModAlt | ModGui
	ModShiftAlt        = ModShift | ModAlt
	ModShiftGui        = ModShift | ModGui
	ModShiftAltGui     = ModShift | ModAlt | ModGui
	ModAltGui          = ModAlt | ModGui
)

// Has returns true if m contains the specified modifier.
func (m ModifierKey) Has(mod ModifierKey) bool {
	return m&mod != 0
}

// HasCtrl returns true if Control is held.
func (m ModifierKey) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasShift returns true if Shift is held.
func (m ModifierKey) HasShift() bool {
	return m.Has(ModShift)
}

// HasAlt returns true if Alt is held.
func (m ModifierKey) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasGui returns true if Gui is held.
func (m ModifierKey) HasGui() bool {
	return m.Has(ModGui)
}

// With returns a new ModifierKey with the specified modifier added.
func (m ModifierKey) With(mod ModifierKey) ModifierKey {
	return m | mod
}

// Without returns a new ModifierKey with the specified modifier removed.
func (m ModifierKey) Without(mod ModifierKey) ModifierKey {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are held.
func (m ModifierKey) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m ModifierKey) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasGui() {
		parts = append(parts, "Gui")
	}
	return strings.Join(parts, "+")
}

// modifierNames maps modifier names (lowercase) to ModifierKey values.
var modifierNames = map[string]ModifierKey{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"shift":   ModShift,
	"s":       ModShift,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"gui":     ModGui,
	"g":       ModGui,
	"cmd":     ModGui,
	"command": ModGui,
	"win":     ModGui,
	"super":   ModGui,
	"meta":    ModGui,
}

// ModifierFromName returns the modifier for a given name
// (case-insensitive). Unrecognized names return ModNone.
func ModifierFromName(name string) ModifierKey {
	if m, ok := modifierNames[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}

// modifierFor maps a modifier key to its flag; other keys map to ModNone.
// Left and right keys count as the same modifier.
func modifierFor(key Key) ModifierKey {
	switch key {
	case KeyLCtrl, KeyRCtrl:
		return ModCtrl
	case KeyLShift, KeyRShift:
		return ModShift
	case KeyLAlt, KeyRAlt:
		return ModAlt
	case KeyLGui, KeyRGui:
		return ModGui
	default:
		return ModNone
	}
}

// Update folds one event into the modifier state.
//
// A press of a left or right Ctrl/Shift/Alt/Gui key sets the corresponding
// flag, a release clears it; both are idempotent. A focus-lost event
// resets the state to ModNone, since held-key state cannot be trusted once
// focus is gone. Focus gained and every other event kind leave the state
// unchanged.
func (m *ModifierKey) Update(e generic.Event) {
	if button, ok := PressArgs(e); ok {
		if kb, ok := button.(Keyboard); ok {
			*m = m.With(modifierFor(Key(kb)))
		}
	}
	if button, ok := ReleaseArgs(e); ok {
		if kb, ok := button.(Keyboard); ok {
			*m = m.Without(modifierFor(Key(kb)))
		}
	}
	if focused, ok := FocusArgs(e); ok && !focused {
		*m = ModNone
	}
}
