package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/windstorm/input"
)

// Chord is a key combined with the modifiers that must be held for it.
type Chord struct {
	// Mods is the required modifier set.
	Mods input.ModifierKey

	// Key is the non-modifier key that triggers the chord.
	Key input.Key
}

// String returns the canonical representation, like "Ctrl+Shift+S".
func (c Chord) String() string {
	if c.Mods.IsEmpty() {
		return c.Key.String()
	}
	return c.Mods.String() + "+" + c.Key.String()
}

// ParseChord parses a chord specification like "Ctrl+S", "Ctrl+Shift+P"
// or "F5". The final "+"-separated token names the key; every earlier
// token names a modifier. Names are case-insensitive.
func ParseChord(spec string) (Chord, error) {
	if spec == "" {
		return Chord{}, fmt.Errorf("%w: empty specification", ErrInvalidChord)
	}

	if spec == "+" {
		return Chord{Key: input.KeyPlus}, nil
	}

	parts := strings.Split(spec, "+")
	// A doubled trailing separator means the key itself is "+", as in
	// "Ctrl++". A single trailing separator is a missing key name.
	if len(parts) >= 3 && parts[len(parts)-1] == "" && parts[len(parts)-2] == "" {
		parts = append(parts[:len(parts)-2], "+")
	}

	var chord Chord
	for _, part := range parts[:len(parts)-1] {
		mod := input.ModifierFromName(strings.TrimSpace(part))
		if mod == input.ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidChord, part, spec)
		}
		chord.Mods = chord.Mods.With(mod)
	}

	keyName := strings.TrimSpace(parts[len(parts)-1])
	key := input.KeyFromName(keyName)
	if key == input.KeyUnknown && !strings.EqualFold(keyName, "unknown") {
		return Chord{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidChord, keyName, spec)
	}
	chord.Key = key
	return chord, nil
}
