package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quickreview/backend/internal/app"
	"github.com/quickreview/backend/internal/infrastructure/config"
	"github.com/quickreview/backend/internal/infrastructure/logging"
)

type rootOptions struct {
	dbPath  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "qrctl",
		Short:         "Manage QuickReview question banks from the command line",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (overrides DATABASE_PATH)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newImportCmd(opts),
		newStatsCmd(opts),
		newNextCmd(opts),
		newSimulateCmd(),
	)
	return cmd
}

// open loads configuration, applies the --db override and opens the app.
// Logs are discarded unless --verbose is set.
func (o *rootOptions) open(ctx context.Context, stderr io.Writer) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
	}

	var logger *slog.Logger
	if o.verbose {
		cfg.Log.Format = "text"
		logger = logging.New(stderr, cfg.Log)
	} else {
		logger = slog.New(slog.DiscardHandler)
	}

	return app.New(ctx, cfg, logger)
}
