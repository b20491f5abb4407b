// main.go
//
// HTTP server entry point.
// Loads configuration, resolves the word source, and serves the JSON API
// until the process is interrupted. Idle sessions are swept in the background.
// On shutdown, in-flight requests drain before the word source is closed.

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgame/internal/config"
	"github.com/robalobadob/wordgame/internal/httpserver"
	"github.com/robalobadob/wordgame/internal/store"
	"github.com/robalobadob/wordgame/internal/words"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeWords, err := words.Open(ctx, cfg.WordsDB, cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	defer closeWords()

	mem := store.NewMemoryStore()
	go store.RunSweeper(ctx, mem, cfg.SessionTimeout/4, cfg.SessionTimeout, func(n int) {
		log.Info().Int("swept", n).Msg("expired idle sessions")
	})

	srv := httpserver.New(cfg, mem, src)
	log.Info().Str("port", cfg.Port).Msg("starting wordgame server")
	if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		return
	}
	log.Info().Msg("server stopped")
}
