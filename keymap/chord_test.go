package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/windstorm/input"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		spec string
		want Chord
	}{
		{"S", Chord{Key: input.KeyS}},
		{"s", Chord{Key: input.KeyS}},
		{"F5", Chord{Key: input.KeyF5}},
		{"Ctrl+S", Chord{Mods: input.ModCtrl, Key: input.KeyS}},
		{"ctrl+s", Chord{Mods: input.ModCtrl, Key: input.KeyS}},
		{"Ctrl+Shift+P", Chord{Mods: input.ModCtrlShift, Key: input.KeyP}},
		{"Cmd+Q", Chord{Mods: input.ModGui, Key: input.KeyQ}},
		{"Alt+Enter", Chord{Mods: input.ModAlt, Key: input.KeyReturn}},
		{"Ctrl+Esc", Chord{Mods: input.ModCtrl, Key: input.KeyEscape}},
		{"Ctrl++", Chord{Mods: input.ModCtrl, Key: input.KeyPlus}},
		{"Space", Chord{Key: input.KeySpace}},
	}

	for _, tt := range tests {
		got, err := ParseChord(tt.spec)
		if err != nil {
			t.Errorf("ParseChord(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChord(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseChordInvalid(t *testing.T) {
	tests := []string{
		"",
		"Hyper+S",
		"Ctrl+NoSuchKey",
		"Ctrl+",
		"NotAKey",
	}

	for _, spec := range tests {
		if _, err := ParseChord(spec); !errors.Is(err, ErrInvalidChord) {
			t.Errorf("ParseChord(%q) error = %v, want ErrInvalidChord", spec, err)
		}
	}
}

func TestChordString(t *testing.T) {
	tests := []struct {
		chord Chord
		want  string
	}{
		{Chord{Key: input.KeyS}, "S"},
		{Chord{Mods: input.ModCtrl, Key: input.KeyS}, "Ctrl+S"},
		{Chord{Mods: input.ModCtrlShiftAltGui, Key: input.KeyF1}, "Ctrl+Shift+Alt+Gui+F1"},
	}

	for _, tt := range tests {
		if got := tt.chord.String(); got != tt.want {
			t.Errorf("Chord.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseChordRoundTrip(t *testing.T) {
	specs := []string{"Ctrl+S", "Ctrl+Shift+P", "Alt+F4", "Escape"}

	for _, spec := range specs {
		chord, err := ParseChord(spec)
		if err != nil {
			t.Errorf("ParseChord(%q) error = %v", spec, err)
			continue
		}
		again, err := ParseChord(chord.String())
		if err != nil {
			t.Errorf("ParseChord(%q) error = %v", chord.String(), err)
			continue
		}
		if again != chord {
			t.Errorf("ParseChord(%q) round trip = %+v, want %+v", spec, again, chord)
		}
	}
}
