// Package config loads REPL cosmetics from an optional YAML file. It never
// touches a language invariant (indentation width, keyword set, and so on
// are frozen by the interpreter itself); this is presentation only.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// REPLConfig configures the interactive REPL's look and feel.
type REPLConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Theme       string `yaml:"theme"`
}

// Default returns the REPL's built-in configuration, used whenever no
// config file is found.
func Default() REPLConfig {
	return REPLConfig{
		Prompt:      ">>> ",
		HistoryFile: ".mython_history",
		Theme:       "default",
	}
}

// DefaultPath returns ~/.mythonrc.yaml, falling back to a relative path if
// the home directory can't be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mythonrc.yaml"
	}
	return filepath.Join(home, ".mythonrc.yaml")
}

// Load reads path and overlays it on top of Default. A missing file is not
// an error: it just means the defaults apply.
func Load(path string) (REPLConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
