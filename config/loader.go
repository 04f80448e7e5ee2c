package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML configuration file and unmarshals it into the
// specified type. T must be a struct type that can be unmarshaled from
// YAML.
func LoadConfig[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// LoadCLIConfig reads and validates a swayctl CLI configuration file. A
// missing file is not an error: every field has a working default, so
// the CLI runs config-free.
func LoadCLIConfig(path string) (*CLI, error) {
	logger := log.With().Str("com", "config-loader").Logger()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug().Str("path", path).Msg("no config file, using defaults")
		return &CLI{}, nil
	}

	cfg, err := LoadConfig[CLI](path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	logger.Debug().Str("path", path).Msg("loaded config")
	return cfg, nil
}
