// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"stack-advisor/internal/errors"
	"stack-advisor/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog dataset configuration
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Storage contains session storage configuration
	Storage StorageConfig `json:"storage"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains catalog dataset settings
type CatalogConfig struct {
	// Path is an optional YAML dataset file; empty means the built-in
	// catalog
	Path string `json:"path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows per-tool details in reports
	ShowDetails bool `json:"show_details"`
}

// StorageConfig contains session storage settings
type StorageConfig struct {
	// Backend selects the store backend (memory, file)
	Backend string `json:"backend"`

	// Directory is the file backend's directory
	Directory string `json:"directory,omitempty"`
}

// Default returns the default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Version: "1",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Storage: StorageConfig{
			Backend:   "file",
			Directory: filepath.Join(home, ".stack-advisor", "sessions"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "reading config file %s", path)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "invalid config file", err)
	}
	return cfg, nil
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the active configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
