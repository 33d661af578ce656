package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quickreview/backend/internal/app"
	"github.com/quickreview/backend/internal/infrastructure/config"
	"github.com/quickreview/backend/internal/infrastructure/logging"

	_ "github.com/quickreview/backend/docs" // swagger docs
)

// @title           QuickReview API
// @version         1.0
// @description     Personal quiz review: organize questions into banks, review them one at a time and track accuracy.

// @host      localhost:5001
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Serve(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		a.Close()
		os.Exit(1)
	}
}
