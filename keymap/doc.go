// Package keymap binds modifier+key chords to named actions.
//
// A Chord pairs a modifier bitset with a key ("Ctrl+Shift+S"). A Map
// holds chord-to-action bindings; a Handler feeds a modifier tracker from
// the event stream and resolves key presses against a Map. Bindings can
// be declared in TOML files and reloaded live when the file changes.
package keymap
