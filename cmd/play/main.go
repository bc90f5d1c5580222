package main

import (
	"context"
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ZaneH/sweeper.party-tui/internal/client"
	"github.com/ZaneH/sweeper.party-tui/internal/config"
	"github.com/ZaneH/sweeper.party-tui/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	size := flag.Int("size", cfg.Game.Size, "board size (tiles per side)")
	bombs := flag.Int("bombs", cfg.Game.Bombs, "number of bombs")
	seed := flag.Uint64("seed", 0, "seed for a reproducible board (0 picks one at random)")
	flag.Parse()

	cfg.Game.Size = *size
	cfg.Game.Bombs = *bombs
	if *seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Game.Validate(); err != nil {
		log.Fatal("invalid board", "err", err)
	}

	// The TUI owns the terminal, so logs go to a file when debugging.
	logger := log.New(os.Stderr)
	logger.SetLevel(log.ErrorLevel)
	if path := os.Getenv("SWEEPER_LOG_FILE"); path != "" {
		f, err := tea.LogToFile(path, "sweeper")
		if err != nil {
			log.Fatal("failed to open log file", "err", err)
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(cfg.LogLevel)
	}
	log.SetDefault(logger)

	gameClient := client.New(
		client.WithLogger(logger),
		client.WithGenerators(cfg.NewGenerator),
	)
	defer gameClient.Close()

	p := tea.NewProgram(tui.NewModel(context.Background(), gameClient, cfg.Game), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("tui error", "err", err)
	}
}
