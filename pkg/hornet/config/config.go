// Package config loads CLI and batch-run settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hornlab/hornet/pkg/hornet"
	"github.com/hornlab/hornet/pkg/hornet/internalerr"
)

// Config holds batch and CLI settings. The zero value is usable: empty
// dialect means per-file inference, zero timeout means the default.
type Config struct {
	Dialect        string `yaml:"dialect"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Learn          bool   `yaml:"learn"`
	Semantic       bool   `yaml:"semantic"`
	StorePath      string `yaml:"store_path"`
	FixtureDir     string `yaml:"fixture_dir"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field values and fills in defaults.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative: %w", internalerr.ErrInvalidConfig)
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = hornet.DefaultTimeout
	}
	if c.Dialect != "" {
		if _, err := hornet.ParseDialect(c.Dialect); err != nil {
			return fmt.Errorf("dialect: %v: %w", err, internalerr.ErrInvalidConfig)
		}
	}
	return nil
}
