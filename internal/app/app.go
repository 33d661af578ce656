// Package app wires configuration, storage and services together for the
// server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/quickreview/backend/internal/api"
	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
	"github.com/quickreview/backend/internal/infrastructure/config"
	"github.com/quickreview/backend/internal/service"
	"github.com/quickreview/backend/internal/store"
	"github.com/quickreview/backend/internal/validation"
)

type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    *store.SQLiteStore
	Validate *validator.Validate
	Review   *service.ReviewService
	Importer *service.ImportService
}

// New opens the database (applying migrations) and builds the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := store.NewSQLite(ctx, cfg.Database.Path, cfg.Database.BusyTimeout)
	if err != nil {
		return nil, err
	}

	selector := practicesession.NewSelector(practicesession.WithWeights(practicesession.Weights{
		Low:  cfg.Selection.WeightLow,
		Mid:  cfg.Selection.WeightMid,
		High: cfg.Selection.WeightHigh,
	}))
	validate := validation.New()

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    db,
		Validate: validate,
		Review:   service.NewReviewService(db, selector, logger),
		Importer: service.NewImportService(db, validate, logger),
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

// Handler returns the full HTTP stack: routes wrapped in
// RequestID -> Recovery -> Logging -> CORS.
func (a *App) Handler() http.Handler {
	h := api.NewHandler(a.Store, a.Review, a.Importer, a.Validate, a.Logger, a.Config.Upload.MaxBodyBytes)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, h)

	return api.Chain(
		api.RequestID,
		api.Recovery(a.Logger),
		api.Logging(a.Logger),
		api.CORS(a.Config.CORS.AllowedOrigins),
	)(mux)
}

// Serve makes sure the default bank exists and runs the HTTP server until
// ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	if _, err := a.Importer.EnsureBank(ctx, a.Config.Database.DefaultBank, ""); err != nil {
		return fmt.Errorf("ensure default bank: %w", err)
	}

	cfg := a.Config.Server
	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           a.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("starting server", "address", cfg.Address)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	a.Logger.Info("shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
