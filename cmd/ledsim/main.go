package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledpad/internal/device"
	"github.com/coreman2200/ledpad/internal/grid"
	"github.com/coreman2200/ledpad/internal/project"
)

// ledsim plays a project in the terminal: each frame is printed as a block of
// on/off characters at the project's speed. With -send it also pushes the
// animation through the simulated device sender.
func main() {
	var (
		projectPath = flag.String("project", "", "path to a project file")
		speedMS     = flag.Int("speed-ms", 0, "frame interval override in milliseconds")
		loop        = flag.Bool("loop", false, "repeat the animation until interrupted")
		send        = flag.Bool("send", false, "also send through the simulated device sender")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *projectPath == "" {
		log.Fatal().Msg("provide -project path to a project file")
	}
	file, frames, err := project.Load(*projectPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *projectPath).Msg("project load failed")
	}

	interval := file.Image.Speed
	if *speedMS > 0 {
		interval = *speedMS
	}
	if interval < 10 {
		interval = 10
	}

	if *send {
		sim := device.NewSim()
		if err := sim.SendAnimation(context.Background(), frames, file.Image.Effect, file.Image.Speed); err != nil {
			log.Fatal().Err(err).Msg("send failed")
		}
	}

	for {
		for i, f := range frames {
			fmt.Printf("frame %d/%d\n%s\n", i+1, len(frames), renderFrame(f))
			time.Sleep(time.Duration(interval) * time.Millisecond)
		}
		if !*loop {
			return
		}
	}
}

func renderFrame(f grid.Grid) string {
	var b strings.Builder
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if f.Get(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
