// Package config handles the persistent application configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultBackend is the local backend used when nothing else is configured.
const DefaultBackend = "http://localhost:8000"

// Config is the persistent application configuration.
type Config struct {
	Backend BackendConfig `json:"backend"`
	UI      UIConfig      `json:"ui"`
}

// BackendConfig selects the analysis backend.
type BackendConfig struct {
	BaseURL string `json:"base_url,omitempty"`
}

// UIConfig holds UI preferences.
type UIConfig struct {
	HistoryLimit int `json:"history_limit"` // recent analyses shown on the landing screen
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{HistoryLimit: 10},
	}
}

// DataDir returns the application data directory.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".clausewise")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from disk, or returns defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), nil
	}
	if cfg.UI.HistoryLimit <= 0 {
		cfg.UI.HistoryLimit = 10
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(DataDir(), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0600)
}

// ResolveBackend picks the backend base URL: the CLAUSEWISE_BACKEND
// environment variable wins, then the configured value, then the local
// default.
func (c *Config) ResolveBackend() string {
	if v := os.Getenv("CLAUSEWISE_BACKEND"); v != "" {
		return v
	}
	if c.Backend.BaseURL != "" {
		return c.Backend.BaseURL
	}
	return DefaultBackend
}
