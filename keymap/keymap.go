package keymap

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/windstorm/event/generic"
	"github.com/dshills/windstorm/input"
)

// Binding ties one chord to a named action.
type Binding struct {
	// ID uniquely identifies the binding within its Map. Assigned by Add.
	ID string

	// Chord triggers the binding.
	Chord Chord

	// Action is the name of the action to run.
	Action string

	// Description documents the binding for display purposes.
	Description string

	// Priority determines precedence when several bindings share a
	// chord; lower values win.
	Priority int
}

// Map holds chord-to-action bindings. It is safe for concurrent use.
type Map struct {
	mu      sync.RWMutex
	byID    map[string]Binding
	byChord map[Chord][]Binding
}

// NewMap creates an empty keymap.
func NewMap() *Map {
	return &Map{
		byID:    make(map[string]Binding),
		byChord: make(map[Chord][]Binding),
	}
}

// Bind adds a binding with default priority and returns its ID.
func (m *Map) Bind(chord Chord, action string) string {
	return m.Add(Binding{Chord: chord, Action: action})
}

// Add adds a binding and returns its assigned ID. Bindings for the same
// chord are kept in priority order (lower values first); among equal
// priorities, the earlier addition wins.
func (m *Map) Add(b Binding) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	b.ID = uuid.New().String()
	m.byID[b.ID] = b

	bindings := append(m.byChord[b.Chord], b)
	sort.SliceStable(bindings, func(i, j int) bool {
		return bindings[i].Priority < bindings[j].Priority
	})
	m.byChord[b.Chord] = bindings
	return b.ID
}

// Unbind removes a binding by ID. It reports false when the ID is
// unknown.
func (m *Map) Unbind(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.byID[id]
	if !ok {
		return false
	}
	delete(m.byID, id)

	bindings := m.byChord[b.Chord]
	for i, other := range bindings {
		if other.ID == id {
			m.byChord[b.Chord] = append(bindings[:i], bindings[i+1:]...)
			break
		}
	}
	if len(m.byChord[b.Chord]) == 0 {
		delete(m.byChord, b.Chord)
	}
	return true
}

// Lookup returns the winning binding for a chord.
func (m *Map) Lookup(chord Chord) (Binding, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bindings := m.byChord[chord]
	if len(bindings) == 0 {
		return Binding{}, false
	}
	return bindings[0], true
}

// Bindings returns all bindings in no particular order.
func (m *Map) Bindings() []Binding {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Binding, 0, len(m.byID))
	for _, b := range m.byID {
		result = append(result, b)
	}
	return result
}

// Len returns the number of bindings.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.byID)
}

// Handler resolves the event stream against a keymap. It maintains its
// own modifier tracker, so feeding it every event in order is all a
// caller does.
type Handler struct {
	// Map is the keymap consulted for key presses.
	Map *Map

	mods input.ModifierKey
}

// NewHandler creates a Handler over m.
func NewHandler(m *Map) *Handler {
	return &Handler{Map: m}
}

// Modifiers returns the modifier set currently held.
func (h *Handler) Modifiers() input.ModifierKey {
	return h.mods
}

// Handle feeds one event. If the event is a press of a non-modifier key
// whose chord (with the modifiers currently held) is bound, it returns
// the bound action.
func (h *Handler) Handle(e generic.Event) (Binding, bool) {
	var binding Binding
	var found bool

	if button, ok := input.PressArgs(e); ok {
		if kb, ok := button.(input.Keyboard); ok {
			binding, found = h.Map.Lookup(Chord{Mods: h.mods, Key: input.Key(kb)})
		}
	}

	h.mods.Update(e)
	return binding, found
}
