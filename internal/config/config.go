// Package config loads rolo configuration from an optional rolo.toml
// file and ROLO_* environment variables, falling back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default file names. The store path is deliberately an explicit
// configuration value handed to the store constructor, never a hidden
// constant inside the store itself.
const (
	DefaultStoreFile  = "my_contacts.json"
	DefaultExportFile = "contacts_export.csv"
)

// Config holds the full application configuration.
type Config struct {
	// StorePath is the JSON persistence file for contacts.
	StorePath string `toml:"store_path" mapstructure:"store_path"`
	// ExportPath is the default destination for CSV export.
	ExportPath string `toml:"export_path" mapstructure:"export_path"`
	// NoColor disables styled console output.
	NoColor bool `toml:"no_color" mapstructure:"no_color"`
	// Log configures the session log file. Logging is off when
	// Log.File is empty.
	Log LogConfig `toml:"log" mapstructure:"log"`
}

// LogConfig configures the rotating session log.
type LogConfig struct {
	File       string `toml:"file" mapstructure:"file"`
	Level      string `toml:"level" mapstructure:"level"`
	MaxSizeMB  int    `toml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StorePath:  DefaultStoreFile,
		ExportPath: DefaultExportFile,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// Dir returns the directory searched for the user-level config file:
// $XDG_CONFIG_HOME/rolo or ~/.config/rolo.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rolo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rolo")
}

// Load reads configuration from rolo.toml in the current directory or
// the user config directory, then applies ROLO_* environment overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("rolo")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath(Dir())

	v.SetEnvPrefix("ROLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("store_path", cfg.StorePath)
	v.SetDefault("export_path", cfg.ExportPath)
	v.SetDefault("no_color", cfg.NoColor)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", cfg.Log.MaxBackups)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
