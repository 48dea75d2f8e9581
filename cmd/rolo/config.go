package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rolodex/rolo/internal/config"
	"github.com/rolodex/rolo/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rolo configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a commented default rolo.toml to the user config directory
($XDG_CONFIG_HOME/rolo or ~/.config/rolo). Fails if the file already
exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := filepath.Join(config.Dir(), "rolo.toml")
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s Wrote %s\n", ui.RenderPass("✓"), path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config search locations and effective settings",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		fmt.Printf("Search paths:\n  %s\n  %s\n", "./rolo.toml", filepath.Join(config.Dir(), "rolo.toml"))
		fmt.Printf("Store:  %s\n", cfg.StorePath)
		fmt.Printf("Export: %s\n", cfg.ExportPath)
		if cfg.Log.File != "" {
			fmt.Printf("Log:    %s (%s)\n", cfg.Log.File, cfg.Log.Level)
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
