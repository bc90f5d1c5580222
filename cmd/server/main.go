package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/ZaneH/sweeper.party-tui/internal/client"
	"github.com/ZaneH/sweeper.party-tui/internal/config"
	"github.com/ZaneH/sweeper.party-tui/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	log.SetLevel(cfg.LogLevel)

	gameClient := client.New(
		client.WithLogger(log.Default()),
		client.WithGenerators(cfg.NewGenerator),
	)
	defer gameClient.Close()

	s, err := wish.NewServer(
		wish.WithAddress(cfg.Address()),
		wish.WithHostKeyPath(cfg.HostKey),
		wish.WithMiddleware(
			bubbletea.MiddlewareWithProgramHandler(tui.NewProgramHandler(gameClient, cfg.Game), termenv.TrueColor),
			logging.Middleware(),
		),
	)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("SSH server listening", "addr", cfg.Address(), "size", cfg.Game.Size, "bombs", cfg.Game.Bombs)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Fatal("server shutdown error", "err", err)
	}
}
