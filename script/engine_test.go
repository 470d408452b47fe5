package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDispatch(t *testing.T) {
	e := New()
	defer e.Close()

	src := `
		count = 0
		last_action = ""
		on_action("save", function(ev)
			count = count + 1
			last_action = ev.action
		end)
	`
	if err := e.LoadString(src); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if !e.Has("save") {
		t.Fatalf("Has(save) = false, want true")
	}
	if err := e.Dispatch("save", map[string]any{"action": "save"}); err != nil {
		t.Fatalf("Dispatch(save) error = %v", err)
	}
	if err := e.Dispatch("save", map[string]any{"action": "save"}); err != nil {
		t.Fatalf("Dispatch(save) error = %v", err)
	}

	if err := e.LoadString(`assert(count == 2, "count = " .. count)`); err != nil {
		t.Errorf("handler did not run twice: %v", err)
	}
	if err := e.LoadString(`assert(last_action == "save")`); err != nil {
		t.Errorf("payload table not delivered: %v", err)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	e := New()
	defer e.Close()

	if err := e.Dispatch("nope", nil); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Dispatch(unregistered) error = %v, want ErrUnknownAction", err)
	}
}

func TestDispatchHandlerError(t *testing.T) {
	e := New()
	defer e.Close()

	if err := e.LoadString(`on_action("boom", function() error("kaboom") end)`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	err := e.Dispatch("boom", nil)
	if err == nil {
		t.Fatalf("Dispatch(boom) error = nil, want handler error")
	}
}

func TestPayloadConversion(t *testing.T) {
	e := New()
	defer e.Close()

	src := `
		on_action("inspect", function(ev)
			assert(ev.name == "cursor", "name = " .. tostring(ev.name))
			assert(ev.x == 4.5, "x = " .. tostring(ev.x))
			assert(ev.pressed == true)
			assert(ev.missing == nil)
			assert(ev.nested.depth == 2)
			assert(ev.list[1] == "a" and ev.list[2] == "b")
		end)
	`
	if err := e.LoadString(src); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	err := e.Dispatch("inspect", map[string]any{
		"name":    "cursor",
		"x":       4.5,
		"pressed": true,
		"missing": nil,
		"nested":  map[string]any{"depth": 2},
		"list":    []any{"a", "b"},
	})
	if err != nil {
		t.Errorf("Dispatch(inspect) error = %v", err)
	}
}

func TestLoadStringInvalid(t *testing.T) {
	e := New()
	defer e.Close()

	if err := e.LoadString("this is not lua"); err == nil {
		t.Errorf("LoadString(invalid) error = nil, want parse error")
	}
}

func TestLoadFile(t *testing.T) {
	e := New()
	defer e.Close()

	path := filepath.Join(t.TempDir(), "actions.lua")
	src := `on_action("quit", function() end)` + "\n" + `on_action("open", function() end)` + "\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	got := e.Actions()
	want := []string{"open", "quit"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Actions() = %v, want %v", got, want)
	}

	if err := e.LoadFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Errorf("LoadFile(missing) error = nil, want error")
	}
}
