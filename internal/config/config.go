// Package config loads CLI defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name, e.g. OPTICS_STOPS.
const Prefix = "OPTICS"

// Bounds on the number of parametric stops.
const (
	MinStops = 2
	MaxStops = 100
)

// Config holds defaults for the generate command. Command-line flags take
// precedence over every value here.
type Config struct {
	OutputDir string   `envconfig:"OUTPUT_DIR" default:"./output"`
	Stops     int      `envconfig:"STOPS" default:"16"`
	Mode      string   `envconfig:"FIGMA_MODE" default:"both"`
	LogLevel  string   `envconfig:"LOG_LEVEL" default:"warn"`
	Formats   []string `envconfig:"FORMATS"`
}

// Load reads .env from the working directory, if present, then decodes the
// environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads the given dotenv files, ignoring any that do not exist, then
// decodes the environment. Variables already set in the environment win over
// dotenv values.
func LoadFrom(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	return &cfg, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if err := ValidateStops(c.Stops); err != nil {
		return err
	}
	return c.ValidateGlobal()
}

// ValidateGlobal checks the values every command depends on. Stops are left
// to the commands that generate parametric palettes.
func (c *Config) ValidateGlobal() error {
	switch c.Mode {
	case "light", "dark", "both":
	default:
		return fmt.Errorf("invalid figma mode %q (must be light, dark or both)", c.Mode)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level %q (must be trace, debug, info, warn, error or off)", c.LogLevel)
	}
	return nil
}

// ValidateStops checks that a parametric stop count is within bounds.
func ValidateStops(stops int) error {
	if stops < MinStops || stops > MaxStops {
		return fmt.Errorf("stops must be between %d and %d, got %d", MinStops, MaxStops, stops)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}
