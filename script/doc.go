// Package script runs Lua-defined action handlers.
//
// A script registers handlers by name:
//
//	on_action("save", function(ev)
//	    -- ev is a table with the dispatch payload
//	end)
//
// The host resolves key bindings (or any other trigger) to action names
// and dispatches them to the engine. The engine is not safe for
// concurrent use; one goroutine owns it, matching the single-threaded
// event stream.
package script
