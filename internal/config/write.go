package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileHeader = `# rolo configuration.
# Searched in the current directory and $XDG_CONFIG_HOME/rolo (or
# ~/.config/rolo). Every key can be overridden with a ROLO_* environment
# variable, e.g. ROLO_STORE_PATH.

`

// WriteDefault writes a commented default config file to path, creating
// parent directories as needed. It refuses to overwrite an existing
// file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
