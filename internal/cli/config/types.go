// Package config provides configuration management for the stylebridge CLI.
//
// It layers defaults, the project file, STYLEBRIDGE_ environment variables
// and explicitly set flags on top of the shared project types from
// internal/config.
package config

import (
	sharedcfg "github.com/leapstack-labs/stylebridge/internal/config"
)

// Check is an alias for the shared check type.
type Check = sharedcfg.Check

// Values is an alias for the shared property values type.
type Values = sharedcfg.Values

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool    `koanf:"verbose"`
	OutputFormat string  `koanf:"output"`
	Concurrency  int     `koanf:"concurrency"`
	Checks       []Check `koanf:"checks"`

	// ProjectRoot is the directory holding the config file, or the CWD.
	ProjectRoot string `koanf:"-"`
	// ConfigFile is the file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Project returns the project part of the configuration.
func (c *Config) Project() *sharedcfg.ProjectConfig {
	return &sharedcfg.ProjectConfig{
		Concurrency: c.Concurrency,
		Checks:      c.Checks,
	}
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix     = "STYLEBRIDGE_"
)
