package player

import (
	"context"
	"testing"
	"time"
)

func TestStartStop(t *testing.T) {
	ticks := make(chan struct{}, 64)
	p := New(Hooks{Advance: func() { ticks <- struct{}{} }}, MinInterval)

	if p.State() != Idle {
		t.Fatalf("initial state = %v", p.State())
	}

	p.Start(context.Background())
	if !p.Playing() {
		t.Fatal("player should be running after Start")
	}

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("no tick within a second")
	}

	p.Stop()
	if p.Playing() {
		t.Fatal("player should be idle after Stop")
	}

	// Drain whatever was in flight, then verify ticking has ceased.
	time.Sleep(5 * MinInterval)
	for len(ticks) > 0 {
		<-ticks
	}
	time.Sleep(5 * MinInterval)
	if len(ticks) != 0 {
		t.Fatal("ticks arrived after Stop")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	p := New(Hooks{}, time.Hour)
	p.Start(context.Background())
	p.Start(context.Background())
	if p.State() != Running {
		t.Fatalf("state = %v", p.State())
	}
	p.Stop()
	p.Stop()
	if p.State() != Idle {
		t.Fatalf("state = %v", p.State())
	}
}

func TestContextCancelStopsTicking(t *testing.T) {
	ticks := make(chan struct{}, 64)
	p := New(Hooks{Advance: func() { ticks <- struct{}{} }}, MinInterval)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("no tick within a second")
	}
	cancel()

	time.Sleep(5 * MinInterval)
	for len(ticks) > 0 {
		<-ticks
	}
	time.Sleep(5 * MinInterval)
	if len(ticks) != 0 {
		t.Fatal("ticks arrived after context cancel")
	}
}

func TestIntervalFloor(t *testing.T) {
	p := New(Hooks{}, time.Nanosecond)
	if p.interval != MinInterval {
		t.Fatalf("interval = %v, want floor %v", p.interval, MinInterval)
	}
	p.SetInterval(0)
	if p.interval != MinInterval {
		t.Fatalf("interval after SetInterval(0) = %v", p.interval)
	}
	p.SetInterval(time.Second)
	if p.interval != time.Second {
		t.Fatalf("interval = %v", p.interval)
	}
}

func TestSetIntervalWhileRunning(t *testing.T) {
	ticks := make(chan struct{}, 64)
	p := New(Hooks{Advance: func() { ticks <- struct{}{} }}, time.Hour)
	p.Start(context.Background())
	defer p.Stop()

	// Re-timing to a short interval takes effect without a restart.
	p.SetInterval(MinInterval)
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("re-timed player never ticked")
	}
}
