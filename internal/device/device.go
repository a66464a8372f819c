// Package device defines the single stable contract the editor exposes to a
// transmission collaborator. The editor knows nothing about the wire
// protocol; it hands a sender composed frame sequences and text and lets the
// implementation worry about the link.
package device

import (
	"context"
	"errors"

	"github.com/coreman2200/ledpad/internal/grid"
)

// Effect selects the device-side transition applied to a payload. The names
// round-trip through project files.
type Effect string

const (
	EffectNone        Effect = "NONE"
	EffectScrollUp    Effect = "SCROLL_UP"
	EffectScrollDown  Effect = "SCROLL_DOWN"
	EffectScrollLeft  Effect = "SCROLL_LEFT"
	EffectScrollRight Effect = "SCROLL_RIGHT"
	EffectStack       Effect = "STACK"
	EffectExpand      Effect = "EXPAND"
	EffectLaser       Effect = "LASER"
)

// Effects lists every effect in display order.
func Effects() []Effect {
	return []Effect{
		EffectNone, EffectScrollUp, EffectScrollDown, EffectScrollLeft,
		EffectScrollRight, EffectStack, EffectExpand, EffectLaser,
	}
}

// ParseEffect maps a name to an effect, falling back to EffectNone for
// anything unknown, the way an old project file should still load.
func ParseEffect(s string) Effect {
	for _, e := range Effects() {
		if string(e) == s {
			return e
		}
	}
	return EffectNone
}

// ErrNoFrames is returned when a sender is given nothing to transmit.
var ErrNoFrames = errors.New("device: no frames to send")

// Sender transmits composed content to the matrix. Implementations own
// connection lifecycle and wire format; speed is the editor's 1..3500 slider
// value, translated by the implementation as needed.
type Sender interface {
	SendAnimation(ctx context.Context, frames []grid.Grid, effect Effect, speed int) error
	SendText(ctx context.Context, text string, effect Effect, speed int) error
}

// SpeedByte maps a slider value within [lo, hi] onto the device's 0..255
// speed scale.
func SpeedByte(v, lo, hi int) int {
	if hi <= lo {
		return 0
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	b := int(float64(v-lo)/float64(hi-lo)*255 + 0.5)
	if b < 0 {
		b = 0
	}
	if b > 255 {
		b = 255
	}
	return b
}
