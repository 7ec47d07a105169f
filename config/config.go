// Package config loads the tysh configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the global tysh configuration.
type Config struct {
	Prompt   string `yaml:"prompt"`
	Color    bool   `yaml:"color"`
	RcFile   string `yaml:"rcfile"`
	HistSize int    `yaml:"histsize"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:   "$ ",
		Color:    true,
		RcFile:   filepath.Join(home, ".tyshrc"),
		HistSize: 500,
	}
}

// DefaultPath is where Load looks when given an empty path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tysh", "config.yaml")
}

// Load reads the configuration from path, or from DefaultPath when path
// is empty.  A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
