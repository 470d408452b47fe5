package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/windstorm/input"
)

// newTestTerminal builds a Terminal over a simulation screen.
func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term, screen
}

// nextInput polls the next event, skipping resize events so tests are
// independent of the simulation screen's initial size report. A missing
// event fails the test after a timeout instead of blocking forever.
func nextInput(t *testing.T, term *Terminal) input.Input {
	t.Helper()

	events := make(chan input.Input, 1)
	go func() {
		for {
			in, ok := term.PollEvent()
			if !ok {
				close(events)
				return
			}
			if _, isResize := in.(input.Resize); isResize {
				continue
			}
			events <- in
			return
		}
	}()

	select {
	case in, ok := <-events:
		if !ok {
			t.Fatalf("PollEvent() ok = false, want an event")
		}
		return in
	case <-time.After(2 * time.Second):
		t.Fatalf("PollEvent() delivered no event within 2s")
		return nil
	}
}

func TestTerminalRuneKey(t *testing.T) {
	term, screen := newTestTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	if got := nextInput(t, term); got != (input.Press{Button: input.Keyboard(input.KeyA)}) {
		t.Errorf("first event = %s, want press A", got)
	}
	if got := nextInput(t, term); got != (input.Text{Text: "a"}) {
		t.Errorf("second event = %s, want text \"a\"", got)
	}
}

func TestTerminalUppercaseRune(t *testing.T) {
	term, screen := newTestTerminal(t)

	// Terminals deliver shifted runes already shifted; tcell normalizes
	// the Shift flag away on rune events. Key identity stays
	// case-insensitive while the text event keeps the case.
	screen.InjectKey(tcell.KeyRune, 'A', tcell.ModShift)

	if got := nextInput(t, term); got != (input.Press{Button: input.Keyboard(input.KeyA)}) {
		t.Errorf("first event = %s, want press A", got)
	}
	if got := nextInput(t, term); got != (input.Text{Text: "A"}) {
		t.Errorf("second event = %s, want text \"A\"", got)
	}
}

func TestTerminalShiftedSpecialKey(t *testing.T) {
	term, screen := newTestTerminal(t)

	// Shift survives on non-rune keys, so the adapter synthesizes the
	// modifier press there.
	screen.InjectKey(tcell.KeyF5, 0, tcell.ModShift)

	if got := nextInput(t, term); got != (input.Press{Button: input.Keyboard(input.KeyLShift)}) {
		t.Errorf("first event = %s, want press LShift", got)
	}
	if got := nextInput(t, term); got != (input.Press{Button: input.Keyboard(input.KeyF5)}) {
		t.Errorf("second event = %s, want press F5", got)
	}
}

func TestTerminalSpecialKey(t *testing.T) {
	term, screen := newTestTerminal(t)

	screen.InjectKey(tcell.KeyF5, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	if got := nextInput(t, term); got != (input.Press{Button: input.Keyboard(input.KeyF5)}) {
		t.Errorf("first event = %s, want press F5", got)
	}
	if got := nextInput(t, term); got != (input.Press{Button: input.Keyboard(input.KeyReturn)}) {
		t.Errorf("second event = %s, want press Return", got)
	}
}

func TestTerminalModifierSync(t *testing.T) {
	term, screen := newTestTerminal(t)

	// Ctrl held for one key, then gone on the next: the adapter
	// synthesizes the press and release of the modifier key.
	screen.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	want := []input.Input{
		input.Press{Button: input.Keyboard(input.KeyLCtrl)},
		input.Press{Button: input.Keyboard(input.KeyS)},
		input.Release{Button: input.Keyboard(input.KeyLCtrl)},
		input.Press{Button: input.Keyboard(input.KeyX)},
		input.Text{Text: "x"},
	}
	for i, w := range want {
		if got := nextInput(t, term); got != w {
			t.Errorf("event #%d = %s, want %s", i, got, w)
		}
	}
}

func TestTerminalModifierTracking(t *testing.T) {
	term, screen := newTestTerminal(t)

	// The synthesized stream keeps a downstream tracker in sync with the
	// terminal's masks.
	screen.InjectKey(tcell.KeyCtrlA, 0, tcell.ModCtrl|tcell.ModAlt)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var mods input.ModifierKey
	for i := 0; i < 3; i++ {
		mods.Update(nextInput(t, term))
	}
	if mods != input.ModCtrlAlt {
		t.Errorf("modifiers after masked key = %v, want %v", mods, input.ModCtrlAlt)
	}

	for i := 0; i < 4; i++ {
		mods.Update(nextInput(t, term))
	}
	if mods != input.ModNone {
		t.Errorf("modifiers after plain key = %v, want ModNone", mods)
	}
}

func TestTerminalMouse(t *testing.T) {
	term, screen := newTestTerminal(t)

	if err := screen.PostEvent(tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent(mouse) error = %v", err)
	}
	if err := screen.PostEvent(tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent(mouse) error = %v", err)
	}
	if err := screen.PostEvent(tcell.NewEventMouse(5, 7, tcell.WheelUp, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent(mouse) error = %v", err)
	}

	want := []input.Input{
		input.MouseCursor{X: 5, Y: 7},
		input.Press{Button: input.Mouse(input.MouseLeft)},
		input.Release{Button: input.Mouse(input.MouseLeft)},
		input.MouseScroll{DX: 0, DY: 1},
	}
	for i, w := range want {
		if got := nextInput(t, term); got != w {
			t.Errorf("event #%d = %s, want %s", i, got, w)
		}
	}
}

func TestTerminalPaste(t *testing.T) {
	term, screen := newTestTerminal(t)

	// A bracketed paste arrives as one text event; the pasted keys emit
	// no press events.
	if err := screen.PostEvent(tcell.NewEventPaste(true)); err != nil {
		t.Fatalf("PostEvent(paste start) error = %v", err)
	}
	screen.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '!', tcell.ModNone)
	if err := screen.PostEvent(tcell.NewEventPaste(false)); err != nil {
		t.Fatalf("PostEvent(paste end) error = %v", err)
	}
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)

	if got := nextInput(t, term); got != (input.Text{Text: "hi\n!"}) {
		t.Errorf("first event = %s, want text \"hi\\n!\"", got)
	}

	// Typing resumes normally after the paste.
	if got := nextInput(t, term); got != (input.Press{Button: input.Keyboard(input.KeyZ)}) {
		t.Errorf("second event = %s, want press Z", got)
	}
	if got := nextInput(t, term); got != (input.Text{Text: "z"}) {
		t.Errorf("third event = %s, want text \"z\"", got)
	}
}

func TestTerminalFocus(t *testing.T) {
	term, screen := newTestTerminal(t)

	if err := screen.PostEvent(tcell.NewEventFocus(true)); err != nil {
		t.Fatalf("PostEvent(focus) error = %v", err)
	}
	if err := screen.PostEvent(tcell.NewEventFocus(false)); err != nil {
		t.Fatalf("PostEvent(focus) error = %v", err)
	}

	if got := nextInput(t, term); got != (input.Focus{Focused: true}) {
		t.Errorf("first event = %s, want focus gained", got)
	}
	if got := nextInput(t, term); got != (input.Focus{Focused: false}) {
		t.Errorf("second event = %s, want focus lost", got)
	}
}

func TestTerminalResize(t *testing.T) {
	term, screen := newTestTerminal(t)

	if err := screen.PostEvent(tcell.NewEventResize(132, 43)); err != nil {
		t.Fatalf("PostEvent(resize) error = %v", err)
	}

	// Poll until the posted size shows up; the simulation screen may
	// report its initial size first.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		in, ok := term.PollEvent()
		if !ok {
			t.Fatalf("PollEvent() ok = false, want an event")
		}
		if r, isResize := in.(input.Resize); isResize && r.Width == 132 && r.Height == 43 {
			return
		}
	}
	t.Fatalf("posted resize event never delivered")
}

func TestTerminalPostEvent(t *testing.T) {
	term, _ := newTestTerminal(t)

	if err := term.PostEvent(input.Press{Button: input.Keyboard(input.KeyB)}); err != nil {
		t.Fatalf("PostEvent(press) error = %v", err)
	}
	if err := term.PostEvent(input.Press{Button: input.Keyboard(input.KeyEscape)}); err != nil {
		t.Fatalf("PostEvent(escape) error = %v", err)
	}

	want := []input.Input{
		input.Press{Button: input.Keyboard(input.KeyB)},
		input.Text{Text: "b"},
		input.Press{Button: input.Keyboard(input.KeyEscape)},
	}
	for i, w := range want {
		if got := nextInput(t, term); got != w {
			t.Errorf("event #%d = %s, want %s", i, got, w)
		}
	}

	if err := term.PostEvent(input.MouseCursor{X: 1, Y: 1}); !errors.Is(err, ErrUnsupportedEvent) {
		t.Errorf("PostEvent(cursor) error = %v, want ErrUnsupportedEvent", err)
	}
}

func TestTerminalShutdown(t *testing.T) {
	term, _ := newTestTerminal(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, ok := term.PollEvent(); !ok {
				return
			}
		}
	}()

	term.Shutdown()
	term.Shutdown() // idempotent

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("PollEvent() did not unblock after Shutdown")
	}

	if err := term.PostEvent(input.Text{Text: "x"}); !errors.Is(err, ErrClosed) {
		t.Errorf("PostEvent() after Shutdown error = %v, want ErrClosed", err)
	}
}
