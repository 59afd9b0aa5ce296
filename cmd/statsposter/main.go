package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dbl-hq/go-dbl/internal/app"
	"github.com/dbl-hq/go-dbl/internal/config"
	"github.com/dbl-hq/go-dbl/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "statsposter start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	log.Infow("statsposter starting", "app", cfg.AppName, "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poster, err := app.NewPoster(cfg, log)
	if err != nil {
		log.Errorw("failed to initialize poster", "error", err)
		return err
	}

	if err := poster.Run(ctx); err != nil {
		return fmt.Errorf("poster run: %w", err)
	}

	return nil
}
