package backend

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/windstorm/input"
)

// Terminal implements Backend on top of a tcell screen.
//
// Terminals report key presses with a modifier mask instead of separate
// modifier key-up/key-down events, and report no key releases at all. The
// adapter bridges the gap: whenever the reported mask differs from the
// modifiers it currently considers held, it synthesizes the press and
// release events for the changed modifier keys before delivering the key
// event itself. Modifier trackers downstream therefore observe a
// consistent stream.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	closed bool

	// queue holds converted events not yet returned by PollEvent; one
	// terminal event can expand to several input events.
	queue []input.Input

	// mods is the modifier set implied by the last seen mask.
	mods input.ModifierKey

	// pasting and pasteBuf collect pasted runes between bracketed-paste
	// markers, delivered as one text event at the end marker.
	pasting  bool
	pasteBuf []rune

	// buttons is the last seen mouse button mask, wheel bits excluded.
	buttons tcell.ButtonMask

	// lastX, lastY is the last reported cursor position.
	lastX, lastY int
}

// NewTerminal creates a Terminal backend on the default screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalScreen(screen), nil
}

// NewTerminalScreen creates a Terminal backend on the given screen. The
// caller keeps ownership of screen setup beyond Init/Shutdown; this is the
// entry point for simulation screens in tests.
func NewTerminalScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, lastX: -1, lastY: -1}
}

// Init implements Backend. It enables mouse, focus and bracketed-paste
// reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnableFocus()
	t.screen.EnablePaste()
	return nil
}

// Shutdown implements Backend.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.closed {
		t.closed = true
		t.screen.Fini()
	}
}

// Size implements Backend.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// PollEvent implements Backend.
func (t *Terminal) PollEvent() (input.Input, bool) {
	for {
		t.mu.Lock()
		if len(t.queue) > 0 {
			in := t.queue[0]
			t.queue = t.queue[1:]
			t.mu.Unlock()
			return in, true
		}
		t.mu.Unlock()

		// PollEvent must run unlocked: it blocks until the next
		// terminal event.
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil, false
		}

		t.mu.Lock()
		t.convertEvent(ev)
		t.mu.Unlock()
	}
}

// PostEvent implements Backend. Key presses and text are posted as
// terminal key events; other kinds report ErrUnsupportedEvent.
func (t *Terminal) PostEvent(in input.Input) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	var ev tcell.Event
	switch e := in.(type) {
	case input.Press:
		kb, ok := e.Button.(input.Keyboard)
		if !ok {
			return ErrUnsupportedEvent
		}
		key, r, ok := toTcellKey(input.Key(kb))
		if !ok {
			return ErrUnsupportedEvent
		}
		ev = tcell.NewEventKey(key, r, tcell.ModNone)
	case input.Text:
		for _, r := range e.Text {
			if err := t.screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); err != nil {
				return ErrQueueFull
			}
		}
		return nil
	default:
		return ErrUnsupportedEvent
	}

	if err := t.screen.PostEvent(ev); err != nil {
		return ErrQueueFull
	}
	return nil
}

// convertEvent translates one terminal event, appending the resulting
// input events to the queue. Callers hold the lock.
func (t *Terminal) convertEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		t.syncModifiers(convertMod(e.Modifiers()))
		t.convertKeyEvent(e)

	case *tcell.EventMouse:
		t.syncModifiers(convertMod(e.Modifiers()))
		t.convertMouseEvent(e)

	case *tcell.EventResize:
		w, h := e.Size()
		t.queue = append(t.queue, input.Resize{Width: w, Height: h})

	case *tcell.EventFocus:
		t.queue = append(t.queue, input.Focus{Focused: e.Focused})

	case *tcell.EventPaste:
		if e.Start() {
			t.pasting = true
			t.pasteBuf = t.pasteBuf[:0]
			return
		}
		t.pasting = false
		if len(t.pasteBuf) > 0 {
			t.queue = append(t.queue, input.Text{Text: string(t.pasteBuf)})
			t.pasteBuf = nil
		}
	}
}

// syncModifiers reconciles the held-modifier state with the mask reported
// by the terminal, emitting synthetic press/release events for the
// difference.
func (t *Terminal) syncModifiers(mods input.ModifierKey) {
	if mods == t.mods {
		return
	}
	for _, m := range [...]struct {
		flag input.ModifierKey
		key  input.Key
	}{
		{input.ModCtrl, input.KeyLCtrl},
		{input.ModShift, input.KeyLShift},
		{input.ModAlt, input.KeyLAlt},
		{input.ModGui, input.KeyLGui},
	} {
		switch {
		case mods.Has(m.flag) && !t.mods.Has(m.flag):
			t.queue = append(t.queue, input.Press{Button: input.Keyboard(m.key)})
		case !mods.Has(m.flag) && t.mods.Has(m.flag):
			t.queue = append(t.queue, input.Release{Button: input.Keyboard(m.key)})
		}
	}
	t.mods = mods
}

// convertKeyEvent expands one terminal key event into a key press and,
// for printable runes, a text event. During a bracketed paste the runes
// accumulate instead; no press events are emitted for pasted keys.
func (t *Terminal) convertKeyEvent(e *tcell.EventKey) {
	if t.pasting {
		switch e.Key() {
		case tcell.KeyRune:
			t.pasteBuf = append(t.pasteBuf, e.Rune())
		case tcell.KeyEnter:
			t.pasteBuf = append(t.pasteBuf, '\n')
		case tcell.KeyTab:
			t.pasteBuf = append(t.pasteBuf, '\t')
		}
		return
	}

	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		key := runeKey(r)
		t.queue = append(t.queue, input.Press{Button: input.Keyboard(key)})
		if unicode.IsPrint(r) {
			t.queue = append(t.queue, input.Text{Text: string(r)})
		}
		return
	}

	key := convertKey(e.Key())
	t.queue = append(t.queue, input.Press{Button: input.Keyboard(key)})
}

// convertMouseEvent emits cursor motion, scroll and button transitions
// for one terminal mouse event.
func (t *Terminal) convertMouseEvent(e *tcell.EventMouse) {
	x, y := e.Position()
	if x != t.lastX || y != t.lastY {
		t.lastX, t.lastY = x, y
		t.queue = append(t.queue, input.MouseCursor{X: float64(x), Y: float64(y)})
	}

	mask := e.Buttons()
	if dx, dy, ok := wheelMotion(mask); ok {
		t.queue = append(t.queue, input.MouseScroll{DX: dx, DY: dy})
	}

	const wheelBits = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
	pressed := mask &^ wheelBits
	for tb, mb := range mouseButtons {
		switch {
		case pressed&tb != 0 && t.buttons&tb == 0:
			t.queue = append(t.queue, input.Press{Button: input.Mouse(mb)})
		case pressed&tb == 0 && t.buttons&tb != 0:
			t.queue = append(t.queue, input.Release{Button: input.Mouse(mb)})
		}
	}
	t.buttons = pressed
}

// mouseButtons maps terminal button bits to mouse buttons.
var mouseButtons = map[tcell.ButtonMask]input.MouseButton{
	tcell.Button1: input.MouseLeft,
	tcell.Button2: input.MouseRight,
	tcell.Button3: input.MouseMiddle,
	tcell.Button4: input.MouseX1,
	tcell.Button5: input.MouseX2,
}

// wheelMotion extracts scroll deltas from a button mask.
func wheelMotion(mask tcell.ButtonMask) (dx, dy float64, ok bool) {
	if mask&tcell.WheelUp != 0 {
		dy++
	}
	if mask&tcell.WheelDown != 0 {
		dy--
	}
	if mask&tcell.WheelLeft != 0 {
		dx--
	}
	if mask&tcell.WheelRight != 0 {
		dx++
	}
	return dx, dy, dx != 0 || dy != 0
}

// convertMod converts a terminal modifier mask to a modifier bitset.
func convertMod(m tcell.ModMask) input.ModifierKey {
	var mods input.ModifierKey
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(input.ModCtrl)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(input.ModShift)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(input.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(input.ModGui)
	}
	return mods
}

// runeKey maps a typed rune to its key. SDL keycodes for printable ASCII
// are the lowercase ASCII values, so the common case is a direct decode.
func runeKey(r rune) input.Key {
	if r < 0x80 {
		return input.KeyFromCode(uint32(unicode.ToLower(r)))
	}
	return input.KeyUnknown
}

// specialKeys maps terminal special keys to input keys. Control-letter
// aliases (Ctrl+I is Tab, Ctrl+M is Enter) resolve to the named key.
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyReturn,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// convertKey converts a terminal key to an input key.
func convertKey(k tcell.Key) input.Key {
	if key, ok := specialKeys[k]; ok {
		return key
	}
	// Remaining control letters map to the letter key; syncModifiers has
	// already recorded Ctrl as held.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return input.KeyA + input.Key(k-tcell.KeyCtrlA)
	}
	return input.KeyUnknown
}

// tcellSpecials is the reverse of specialKeys for posting events.
var tcellSpecials = func() map[input.Key]tcell.Key {
	m := make(map[input.Key]tcell.Key, len(specialKeys))
	for tk, k := range specialKeys {
		if _, ok := m[k]; !ok {
			m[k] = tk
		}
	}
	return m
}()

// toTcellKey converts an input key for posting. Printable ASCII keys post
// as runes; named specials post as their key code.
func toTcellKey(k input.Key) (tcell.Key, rune, bool) {
	if tk, ok := tcellSpecials[k]; ok {
		return tk, 0, true
	}
	if k >= input.KeySpace && k <= asciiTilde {
		return tcell.KeyRune, rune(k), true
	}
	return 0, 0, false
}

// asciiTilde is the top of the printable ASCII keycode range.
const asciiTilde = input.Key(0x7E)
