package main

import (
	"flag"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledpad/internal/config"
)

func main() {
	var (
		projectPath = flag.String("project", "", "project file to open at startup")
		fontsDir    = flag.String("fonts", "fonts", "directory of .slf pixel fonts")
		configPath  = flag.String("config", config.DefaultPath(), "path to the config file")
		logPath     = flag.String("log", "", "append logs to this file instead of discarding them")
	)
	flag.Parse()

	// The terminal belongs to the TUI; logs go to a file or nowhere.
	zerolog.TimeFieldFormat = time.RFC3339
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("path", *logPath).Msg("open log file")
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.Nop()
	}

	m := initialModel(*projectPath, *fontsDir, *configPath)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("tui crashed")
	}
}
