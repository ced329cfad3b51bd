// Package config loads the runtime settings of the scriptrand CLI.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment. Command-line flags
// override them.
type Config struct {
	// Seed makes every generator deterministic when set.
	Seed *uint64 `env:"SCRIPTRAND_SEED"`
	// LogLevel is a zap level name.
	LogLevel string `env:"SCRIPTRAND_LOG_LEVEL" envDefault:"warn"`
	// NoColor disables ANSI output (https://no-color.org).
	NoColor bool `env:"NO_COLOR"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
