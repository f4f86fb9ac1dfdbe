// Package config loads the CLI's optional .loxrc.yaml, a YAML-backed
// config file parsed via github.com/goccy/go-yaml. Missing or malformed
// config is never an error: defaults apply instead.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config controls the REPL's cosmetics and history behavior.
type Config struct {
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"historyFile"`
	MaxHistory  int    `yaml:"maxHistory"`
}

func defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Color:       true,
		HistoryFile: filepath.Join(home, ".lox_history"),
		MaxHistory:  1000,
	}
}

// Load reads .loxrc.yaml from the current working directory, or from the
// path named by $LOX_CONFIG if set. Defaults apply wherever the file is
// absent or a field is missing.
func Load() Config {
	cfg := defaults()

	path := os.Getenv("LOX_CONFIG")
	if path == "" {
		path = ".loxrc.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults()
	}
	return cfg
}
