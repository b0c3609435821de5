// Package config loads server settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "COLOUR_MCP_CONFIG"
	EnvLogLevel   = "COLOUR_MCP_LOG_LEVEL"
	EnvStrict     = "COLOUR_MCP_STRICT"
)

// Config holds all server configuration.
type Config struct {
	// LogLevel is "info" or "debug". Debug logs every tool call.
	LogLevel string `yaml:"log_level"`

	// Strict rejects malformed colours instead of falling back to black.
	Strict bool `yaml:"strict"`

	Swatch SwatchConfig `yaml:"swatch"`
}

// SwatchConfig holds the defaults for colour_swatch.
type SwatchConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Cell   int `yaml:"cell"` // checkerboard square size in pixels
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Swatch: SwatchConfig{
			Width:  64,
			Height: 64,
			Cell:   8,
		},
	}
}

// Load builds the configuration from defaults, the YAML file named by
// COLOUR_MCP_CONFIG (if set), and environment overrides, in that order.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvStrict); v != "" {
		cfg.Strict = envBool(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	switch c.LogLevel {
	case "info", "debug":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.Swatch.Width <= 0 || c.Swatch.Height <= 0 {
		errs = append(errs, fmt.Errorf("swatch size %dx%d must be positive", c.Swatch.Width, c.Swatch.Height))
	}
	if c.Swatch.Cell < 0 {
		errs = append(errs, fmt.Errorf("swatch cell %d must not be negative", c.Swatch.Cell))
	}
	return errors.Join(errs...)
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func envBool(v string) bool {
	v = strings.ToLower(v)
	return v == "true" || v == "1" || v == "yes"
}
