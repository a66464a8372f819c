package device

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledpad/internal/grid"
)

// Sim is a no-hardware sender: it logs what would have gone over the link.
// It backs the shell when no device is configured and the tests always.
type Sim struct {
	// Animations and Texts record what was sent, newest last.
	Animations [][]grid.Grid
	Texts      []string
}

// NewSim returns an empty simulated sender.
func NewSim() *Sim { return &Sim{} }

func (s *Sim) SendAnimation(ctx context.Context, frames []grid.Grid, effect Effect, speed int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Animations = append(s.Animations, frames)
	log.Info().
		Int("frames", len(frames)).
		Str("effect", string(effect)).
		Int("speed", speed).
		Msg("sim: animation sent")
	return nil
}

func (s *Sim) SendText(ctx context.Context, text string, effect Effect, speed int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Texts = append(s.Texts, text)
	log.Info().
		Int("chars", len(text)).
		Str("effect", string(effect)).
		Int("speed", speed).
		Msg("sim: text sent")
	return nil
}
