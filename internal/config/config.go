// Package config loads and persists the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. Categories absent from
// the map are enabled; the map only records explicit opt-outs/opt-ins.
type Config struct {
	Categories               map[string]bool `yaml:"categories,omitempty"`
	ExtraProtectedPaths      []string        `yaml:"extra_protected_paths,omitempty"`
	ExtraProtectedExtensions []string        `yaml:"extra_protected_extensions,omitempty"`
	DryRun                   bool            `yaml:"dry_run"`
	Verbose                  bool            `yaml:"verbose"`
	Log                      LogConfig       `yaml:"log"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	MaxSizeMB  int `yaml:"max_size_mb"`
	MaxBackups int `yaml:"max_backups"`
	MaxAgeDays int `yaml:"max_age_days"`
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Save saves configuration to a file, creating the directory if needed.
func Save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, path := range c.ExtraProtectedPaths {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("extra protected path must be absolute: %s", path)
		}
	}

	for _, ext := range c.ExtraProtectedExtensions {
		if strings.TrimLeft(ext, ".") == "" {
			return fmt.Errorf("invalid protected extension: %q", ext)
		}
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must be >= 0")
	}

	return nil
}

// CategoryEnabled reports whether a category should be scanned.
func (c *Config) CategoryEnabled(id string) bool {
	enabled, ok := c.Categories[id]
	if !ok {
		return true
	}
	return enabled
}
