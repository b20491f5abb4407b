// cmd/play/main.go
//
// Terminal client entry point.
// Loads configuration, resolves the word source, and runs one game per
// session in the alternate screen. Pass -daily for the word of the day.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgame/internal/config"
	"github.com/robalobadob/wordgame/internal/daily"
	"github.com/robalobadob/wordgame/internal/game"
	"github.com/robalobadob/wordgame/internal/tui"
	"github.com/robalobadob/wordgame/internal/words"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dailyMode := flag.Bool("daily", false, "play the word of the day")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src, closeWords, err := words.Open(context.Background(), cfg.WordsDB, cfg.WordsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}
	defer closeWords()

	var picker game.WordPicker = words.NewPicker(src, nil)
	if *dailyMode {
		picker = daily.NewPicker(src, cfg.DailySalt)
	}

	p := tea.NewProgram(tui.New(game.New(picker), cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
