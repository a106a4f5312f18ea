package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/culiacan/internal/cli"
	"github.com/alexanderramin/culiacan/internal/config"
	"github.com/alexanderramin/culiacan/internal/db"
	"github.com/alexanderramin/culiacan/internal/game"
	"github.com/alexanderramin/culiacan/internal/repository"
	"github.com/alexanderramin/culiacan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, warnings := config.LoadConfig()
	for _, w := range append(warnings, cfg.Validate()...) {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Wire the slot store for the configured backend.
	var slots repository.SlotRepo
	switch cfg.Backend {
	case config.BackendFile:
		slots = repository.NewFileSlotRepo(cfg.SaveDir())
	default:
		database, err := db.OpenDB(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		slots = repository.NewSQLiteSlotRepo(database)
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	opts := game.Options{Tuning: cfg.Tuning, Carry: cfg.Carry}
	app := &cli.App{
		Campaign: service.NewCampaignService(slots, opts, observers...),
		Config:   cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
