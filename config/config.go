package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults.
type Config struct {
	IntervalSec int    `json:"interval_sec"`
	HistorySize int    `json:"history_size"`
	DefaultMode string `json:"default_mode"` // "activity" or "usage"
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		IntervalSec: 2,
		HistorySize: 1200,
		DefaultMode: "activity",
	}
}

// Path returns ~/.config/disktop/config.json (or XDG_CONFIG_HOME).
// Returns empty string if the home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "disktop", "config.json")
}

// Load reads the config file, falling back to defaults on any problem.
func Load() Config {
	cfg := Default()
	path := Path()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.IntervalSec < 1 {
		cfg.IntervalSec = Default().IntervalSec
	}
	if cfg.HistorySize < 1 {
		cfg.HistorySize = Default().HistorySize
	}
	return cfg
}

// Save writes the config file, creating the directory if needed.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
