// Package player drives animation playback: a recurring timer that steps the
// frame cursor through the same navigation path manual stepping uses.
package player

import (
	"context"
	"sync"
	"time"
)

// MinInterval is the floor for the frame interval, matching the device's
// fastest useful rate.
const MinInterval = 10 * time.Millisecond

// State enumerates player states.
type State string

const (
	Idle    State = "idle"
	Running State = "running"
)

// Hooks are dependency-injected callbacks into the editing shell.
type Hooks struct {
	// Advance steps to the next frame. Called once per tick from the player
	// goroutine; shells must marshal it onto their own event loop before
	// touching the editor.
	Advance func()
}

// Player owns the playback timer. All methods are safe for the single
// event-loop caller plus the internal ticker goroutine.
type Player struct {
	mu       sync.Mutex
	state    State
	interval time.Duration
	cancel   context.CancelFunc
	retime   chan time.Duration
	hooks    Hooks
}

// New constructs an idle player with the given frame interval.
func New(h Hooks, interval time.Duration) *Player {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Player{state: Idle, interval: interval, hooks: h}
}

// State returns the current player state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Playing reports whether playback is running.
func (p *Player) Playing() bool { return p.State() == Running }

// Start begins playback. Starting a running player is a no-op. Playback
// stops when ctx is done or Stop is called; there is no in-flight state to
// unwind.
func (p *Player) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Running {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.retime = make(chan time.Duration, 1)
	p.state = Running
	go p.run(ctx, p.interval, p.retime)
}

// Stop halts playback. Stopping an idle player is a no-op.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running {
		return
	}
	p.cancel()
	p.cancel = nil
	p.state = Idle
}

// SetInterval re-times playback, effective from the next tick. It applies to
// the next Start as well when called while idle.
func (p *Player) SetInterval(d time.Duration) {
	if d < MinInterval {
		d = MinInterval
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = d
	if p.state == Running {
		select {
		case p.retime <- d:
		default:
		}
	}
}

func (p *Player) run(ctx context.Context, interval time.Duration, retime <-chan time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case d := <-retime:
			t.Reset(d)
		case <-t.C:
			if p.hooks.Advance != nil {
				p.hooks.Advance()
			}
		}
	}
}
