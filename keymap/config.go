package keymap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// fileBinding is the TOML representation of one binding.
type fileBinding struct {
	Chord       string `toml:"chord"`
	Action      string `toml:"action"`
	Description string `toml:"description,omitempty"`
	Priority    int    `toml:"priority,omitempty"`
}

// file is the TOML representation of a keymap.
type file struct {
	Bindings []fileBinding `toml:"binding"`
}

// Load reads a keymap from a TOML file. A missing file is not an error;
// it loads as an empty keymap.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMap(), nil
		}
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader reads a keymap from an io.Reader.
func LoadReader(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (*Map, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing keymap %s: %w", source, err)
	}

	m := NewMap()
	for _, fb := range f.Bindings {
		chord, err := ParseChord(fb.Chord)
		if err != nil {
			return nil, fmt.Errorf("keymap %s: %w", source, err)
		}
		if fb.Action == "" {
			return nil, fmt.Errorf("keymap %s: chord %q: %w", source, fb.Chord, ErrMissingAction)
		}
		m.Add(Binding{
			Chord:       chord,
			Action:      fb.Action,
			Description: fb.Description,
			Priority:    fb.Priority,
		})
	}
	return m, nil
}

// Save writes the keymap to a TOML file.
func Save(path string, m *Map) error {
	bindings := m.Bindings()
	f := file{Bindings: make([]fileBinding, 0, len(bindings))}
	for _, b := range bindings {
		f.Bindings = append(f.Bindings, fileBinding{
			Chord:       b.Chord.String(),
			Action:      b.Action,
			Description: b.Description,
			Priority:    b.Priority,
		})
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap %s: %w", path, err)
	}
	return nil
}

// Watcher reloads a keymap file when it changes on disk.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Watch starts watching path, calling fn with the reloaded keymap (or a
// load error) after every change. The callback runs on the watcher's
// goroutine.
func Watch(path string, fn func(*Map, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving keymap path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating keymap watcher: %w", err)
	}
	// Watch the directory: editors commonly replace the file, which
	// drops a watch held on the file itself.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching keymap directory: %w", err)
	}

	w := &Watcher{fsw: fsw, path: abs, done: make(chan struct{})}
	go w.run(fn)
	return w, nil
}

func (w *Watcher) run(fn func(*Map, error)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fn(Load(w.path))
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher. It is idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	err := w.fsw.Close()
	<-w.done
	return err
}
