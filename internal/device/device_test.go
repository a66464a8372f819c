package device

import (
	"context"
	"testing"

	"github.com/coreman2200/ledpad/internal/grid"
)

func TestParseEffect(t *testing.T) {
	if got := ParseEffect("SCROLL_LEFT"); got != EffectScrollLeft {
		t.Fatalf("ParseEffect = %q", got)
	}
	if got := ParseEffect("scroll_left"); got != EffectNone {
		t.Fatalf("effect names are case-sensitive, got %q", got)
	}
	if got := ParseEffect("SPARKLE"); got != EffectNone {
		t.Fatalf("unknown effect must fall back to NONE, got %q", got)
	}
	if len(Effects()) != 8 {
		t.Fatalf("Effects() = %d entries", len(Effects()))
	}
}

func TestSpeedByte(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{1, 1, 3500, 0},
		{3500, 1, 3500, 255},
		{-50, 1, 3500, 0},
		{9999, 1, 3500, 255},
		{50, 0, 100, 128},
		{5, 5, 5, 0},
	}
	for _, c := range cases {
		if got := SpeedByte(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("SpeedByte(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestSimRecordsSends(t *testing.T) {
	s := NewSim()
	ctx := context.Background()

	if err := s.SendAnimation(ctx, nil, EffectNone, 100); err != ErrNoFrames {
		t.Fatalf("empty animation: err = %v, want ErrNoFrames", err)
	}

	frames := []grid.Grid{grid.New(), grid.New()}
	if err := s.SendAnimation(ctx, frames, EffectLaser, 100); err != nil {
		t.Fatalf("SendAnimation: %v", err)
	}
	if len(s.Animations) != 1 || len(s.Animations[0]) != 2 {
		t.Fatalf("recorded animations = %v", len(s.Animations))
	}

	if err := s.SendText(ctx, "hi", EffectScrollUp, 200); err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if len(s.Texts) != 1 || s.Texts[0] != "hi" {
		t.Fatalf("recorded texts = %v", s.Texts)
	}
}

func TestSimHonorsContext(t *testing.T) {
	s := NewSim()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.SendAnimation(ctx, []grid.Grid{grid.New()}, EffectNone, 100); err == nil {
		t.Fatal("canceled context must refuse the send")
	}
	if err := s.SendText(ctx, "hi", EffectNone, 100); err == nil {
		t.Fatal("canceled context must refuse the send")
	}
	if len(s.Animations) != 0 || len(s.Texts) != 0 {
		t.Fatal("refused sends must not be recorded")
	}
}
