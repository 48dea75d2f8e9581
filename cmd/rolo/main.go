package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rolodex/rolo/internal/book"
	"github.com/rolodex/rolo/internal/config"
	"github.com/rolodex/rolo/internal/logging"
	"github.com/rolodex/rolo/internal/shell"
	"github.com/rolodex/rolo/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "rolo",
	Short: "Personal contact book",
	Long: `rolo is a personal contact manager with a JSON file store.

Running rolo without arguments starts the interactive menu. The store
file location and other settings come from rolo.toml (see 'rolo config')
or ROLO_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		store := book.Open(cfg.StorePath)
		logger.Infow("session started", "store", cfg.StorePath, "contacts", store.Len())

		shell.New(store, os.Stdin, os.Stdout, cfg.ExportPath, logger).Run()

		logger.Infow("session ended", "contacts", store.Len())
	},
}

// setup loads configuration and builds the session logger, exiting on
// failure. Shared by every subcommand.
func setup() (*config.Config, *zap.SugaredLogger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.NoColor {
		ui.SetEnabled(false)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	return cfg, logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
