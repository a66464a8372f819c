package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledpad/internal/project"
	"github.com/coreman2200/ledpad/internal/ws"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		projectPath = flag.String("project", "", "project file to preview")
		speedMS     = flag.Int("speed-ms", 100, "frame interval in milliseconds")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if *projectPath == "" {
		log.Fatal().Msg("provide -project path to a project file")
	}
	file, frames, err := project.Load(*projectPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *projectPath).Msg("project load failed")
	}
	interval := *speedMS
	if file.Image.Speed > 0 && interval == 100 {
		interval = file.Image.Speed
	}

	state := ws.NewState(frames, interval)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", state.HandleFramesWS)
	mux.HandleFunc("/frames", state.HandleFrames)
	mux.HandleFunc("/health", state.HandleHealth)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      withCORS(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go state.RunPlaybackLoop()
	go func() {
		log.Info().Str("addr", *addr).Int("frames", len(frames)).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server crashed")
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")
	_ = srv.Close()
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
