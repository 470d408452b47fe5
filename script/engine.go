package script

import (
	"errors"
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// ErrUnknownAction is returned when dispatching an action no script has
// registered.
var ErrUnknownAction = errors.New("no handler registered for action")

// Engine hosts Lua action handlers.
type Engine struct {
	l       *lua.LState
	actions map[string]*lua.LFunction
}

// New creates an engine with the on_action registration function
// installed.
func New() *Engine {
	e := &Engine{
		l:       lua.NewState(),
		actions: make(map[string]*lua.LFunction),
	}
	e.l.SetGlobal("on_action", e.l.NewFunction(e.luaOnAction))
	return e
}

// luaOnAction implements on_action(name, fn).
func (e *Engine) luaOnAction(l *lua.LState) int {
	name := l.CheckString(1)
	fn := l.CheckFunction(2)
	e.actions[name] = fn
	return 0
}

// LoadString executes a script given as source text.
func (e *Engine) LoadString(src string) error {
	if err := e.l.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// LoadFile executes a script file.
func (e *Engine) LoadFile(path string) error {
	if err := e.l.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// Actions returns the registered action names, sorted.
func (e *Engine) Actions() []string {
	names := make([]string, 0, len(e.actions))
	for name := range e.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an action has a handler.
func (e *Engine) Has(action string) bool {
	_, ok := e.actions[action]
	return ok
}

// Dispatch invokes the handler for action, passing payload as a Lua
// table. It returns ErrUnknownAction when no handler is registered and
// the script error when the handler fails.
func (e *Engine) Dispatch(action string, payload map[string]any) error {
	fn, ok := e.actions[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	err := e.l.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, e.toLuaTable(payload))
	if err != nil {
		return fmt.Errorf("action %q: %w", action, err)
	}
	return nil
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.l.Close()
}

// toLuaTable converts a payload map to a Lua table.
func (e *Engine) toLuaTable(payload map[string]any) *lua.LTable {
	t := e.l.NewTable()
	for k, v := range payload {
		t.RawSetString(k, e.toLuaValue(v))
	}
	return t
}

// toLuaValue converts a Go value to a Lua value. Unsupported types
// convert via their string representation.
func (e *Engine) toLuaValue(v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case uint32:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case map[string]any:
		return e.toLuaTable(val)
	case []any:
		t := e.l.NewTable()
		for _, item := range val {
			t.Append(e.toLuaValue(item))
		}
		return t
	default:
		return lua.LString(fmt.Sprint(val))
	}
}
