package loop

import (
	"time"

	"github.com/dshills/windstorm/backend"
	"github.com/dshills/windstorm/event"
	"github.com/dshills/windstorm/input"
)

// Default tick rates.
const (
	// DefaultUPS is the default number of update ticks per second.
	DefaultUPS = 120

	// DefaultMaxFPS is the default cap on render ticks per second.
	DefaultMaxFPS = 60
)

// Option configures a Loop.
type Option func(*Loop)

// WithUPS sets the update rate. Zero or negative disables update ticks.
func WithUPS(ups int) Option {
	return func(l *Loop) { l.ups = ups }
}

// WithMaxFPS caps the render rate. Zero or negative disables render ticks.
func WithMaxFPS(fps int) Option {
	return func(l *Loop) { l.maxFPS = fps }
}

// Loop produces the event stream for one backend.
type Loop struct {
	b      backend.Backend
	ups    int
	maxFPS int

	started    bool
	events     chan input.Input
	nextUpdate time.Time
	nextRender time.Time
}

// New creates a Loop over b with default tick rates.
func New(b backend.Backend, opts ...Option) *Loop {
	l := &Loop{
		b:      b,
		ups:    DefaultUPS,
		maxFPS: DefaultMaxFPS,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// start launches the input pump and schedules the first ticks.
func (l *Loop) start() {
	l.started = true
	l.events = make(chan input.Input, 64)
	go func() {
		defer close(l.events)
		for {
			in, ok := l.b.PollEvent()
			if !ok {
				return
			}
			l.events <- in
		}
	}()

	now := time.Now()
	if l.ups > 0 {
		l.nextUpdate = now.Add(l.updateDT())
	}
	if l.maxFPS > 0 {
		l.nextRender = now.Add(l.renderDT())
	}
}

func (l *Loop) updateDT() time.Duration {
	return time.Second / time.Duration(l.ups)
}

func (l *Loop) renderDT() time.Duration {
	return time.Second / time.Duration(l.maxFPS)
}

// Next blocks for the next event: backend input as it arrives, update
// ticks at the fixed timestep, render ticks capped at the maximum frame
// rate. When both tick kinds are due, updates win so simulation catches
// up before the next frame. Next reports false once the backend has shut
// down.
func (l *Loop) Next() (event.Event, bool) {
	if !l.started {
		l.start()
	}

	for {
		now := time.Now()

		// Updates take priority over renders when both are due.
		if l.ups > 0 && !now.Before(l.nextUpdate) {
			l.nextUpdate = l.nextUpdate.Add(l.updateDT())
			return event.UpdateArgs{DT: l.updateDT().Seconds()}, true
		}
		if l.maxFPS > 0 && !now.Before(l.nextRender) {
			l.nextRender = now.Add(l.renderDT())
			w, h := l.b.Size()
			return event.RenderArgs{
				ExtDT:  l.renderDT().Seconds(),
				Width:  w,
				Height: h,
			}, true
		}

		wait := l.untilNextTick(now)
		if wait <= 0 {
			// No ticks scheduled: block on input alone.
			in, ok := <-l.events
			if !ok {
				return nil, false
			}
			return event.Wrap(in), true
		}

		timer := time.NewTimer(wait)
		select {
		case in, ok := <-l.events:
			timer.Stop()
			if !ok {
				return nil, false
			}
			return event.Wrap(in), true
		case <-timer.C:
			// A tick came due; resolve it on the next pass.
		}
	}
}

// untilNextTick returns the wait until the earliest scheduled tick, or
// zero when no ticks are scheduled.
func (l *Loop) untilNextTick(now time.Time) time.Duration {
	var next time.Time
	if l.ups > 0 {
		next = l.nextUpdate
	}
	if l.maxFPS > 0 && (next.IsZero() || l.nextRender.Before(next)) {
		next = l.nextRender
	}
	if next.IsZero() {
		return 0
	}
	d := next.Sub(now)
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}
