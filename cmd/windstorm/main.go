// Package main is an interactive demo of the windstorm event loop.
// It runs a terminal backend, prints every event it receives, and
// dispatches keymap bindings to Lua action handlers.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/windstorm/backend"
	"github.com/dshills/windstorm/event"
	"github.com/dshills/windstorm/input"
	"github.com/dshills/windstorm/keymap"
	"github.com/dshills/windstorm/loop"
	"github.com/dshills/windstorm/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	bindings, err := loadBindings(opts.KeymapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load keymap: %v\n", err)
		return 1
	}

	engine := script.New()
	defer engine.Close()
	if opts.ScriptPath != "" {
		if err := engine.LoadFile(opts.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load script: %v\n", err)
			return 1
		}
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		term.Shutdown()
	}()

	handler := keymap.NewHandler(bindings)
	events := loop.New(term, loop.WithUPS(opts.UPS), loop.WithMaxFPS(opts.MaxFPS))

	for {
		e, ok := events.Next()
		if !ok {
			return 0
		}

		if in, ok := e.(event.Input); ok {
			if binding, ok := handler.Handle(in.Input); ok {
				if binding.Action == "quit" {
					return 0
				}
				if err := dispatch(engine, binding, in.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
				continue
			}
			if opts.Verbose {
				fmt.Printf("input: %s\r\n", in.Input)
			}
			continue
		}

		if args, ok := event.Render(e); ok && opts.Verbose {
			fmt.Printf("render: %dx%d ext dt %.4fs\r\n", args.Width, args.Height, args.ExtDT)
		}
	}
}

// dispatch runs the Lua handler bound to a triggered binding. Bindings
// with no registered handler are reported but not fatal.
func dispatch(engine *script.Engine, binding keymap.Binding, in input.Input) error {
	if !engine.Has(binding.Action) {
		return fmt.Errorf("binding %s: no handler for action %q", binding.Chord, binding.Action)
	}
	return engine.Dispatch(binding.Action, map[string]any{
		"chord":  binding.Chord.String(),
		"action": binding.Action,
		"event":  in.String(),
	})
}

// loadBindings reads a keymap file, falling back to a default map with
// a quit binding when no path is given.
func loadBindings(path string) (*keymap.Map, error) {
	if path != "" {
		return keymap.Load(path)
	}
	m := keymap.NewMap()
	chord, err := keymap.ParseChord("Ctrl+Q")
	if err != nil {
		return nil, err
	}
	m.Add(keymap.Binding{Chord: chord, Action: "quit", Description: "Exit the demo"})
	return m, nil
}

type options struct {
	KeymapPath string
	ScriptPath string
	UPS        int
	MaxFPS     int
	Verbose    bool
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.KeymapPath, "keymap", "", "Path to keymap TOML file")
	flag.StringVar(&opts.KeymapPath, "k", "", "Path to keymap TOML file (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Path to Lua action script")
	flag.StringVar(&opts.ScriptPath, "s", "", "Path to Lua action script (shorthand)")
	flag.IntVar(&opts.UPS, "ups", loop.DefaultUPS, "Update events per second")
	flag.IntVar(&opts.MaxFPS, "max-fps", loop.DefaultMaxFPS, "Maximum render events per second")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Print raw input and render events")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Windstorm - terminal input event loop demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: windstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  windstorm                       Run with the default quit binding\n")
		fmt.Fprintf(os.Stderr, "  windstorm -k keymap.toml        Load bindings from a file\n")
		fmt.Fprintf(os.Stderr, "  windstorm -s actions.lua        Register Lua action handlers\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Windstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.UPS <= 0 || opts.MaxFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: ups and max-fps must be positive\n")
		os.Exit(1)
	}

	return opts
}
