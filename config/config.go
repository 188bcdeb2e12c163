// Package config loads the conduit configuration from YAML with environment
// overrides and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvDatabase = "CONDUIT_DB"
	EnvIndex    = "CONDUIT_INDEX"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "conduit.yaml"

var validate = validator.New()

// Config holds all conduit settings.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Query      QueryConfig      `yaml:"query"`
	Simulation SimulationConfig `yaml:"simulation"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DatabaseConfig locates the state store.
type DatabaseConfig struct {
	Path  string `yaml:"path" validate:"required"`
	Index string `yaml:"index" validate:"oneof=brute cover sql"`
}

// QueryConfig controls neighbor queries.
type QueryConfig struct {
	Neighbors int `yaml:"neighbors" validate:"min=1,max=100"`
}

// SimulationConfig controls trajectory runs.
type SimulationConfig struct {
	Steps int `yaml:"steps" validate:"min=1"`
}

// AnalysisConfig controls the asymptotic analyzer.
type AnalysisConfig struct {
	Resolution int     `yaml:"resolution" validate:"min=1"`
	Epsilon    float64 `yaml:"epsilon" validate:"gt=0"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database:   DatabaseConfig{Path: "conduit.sqlite", Index: "brute"},
		Query:      QueryConfig{Neighbors: 3},
		Simulation: SimulationConfig{Steps: 5},
		Analysis:   AnalysisConfig{Resolution: 50, Epsilon: 0.01},
		Logging:    LoggingConfig{Level: "warn"},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied and the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: failed to create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv(EnvDatabase); path != "" {
		c.Database.Path = path
	}
	if kind := os.Getenv(EnvIndex); kind != "" {
		c.Database.Index = kind
	}
}
