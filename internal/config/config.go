// Package config provides configuration management for gocalc.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the file written by "gocalc config init".
const DefaultFile = ".gocalc.yaml"

// Config represents the configuration for gocalc.
type Config struct {
	// General settings
	Verbose bool `yaml:"verbose"`

	// Diagnostic logging
	Log LogConfig `yaml:"log"`

	// User-facing output
	Display DisplayConfig `yaml:"display"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	File   string `yaml:"file,omitempty"`
}

// DisplayConfig contains settings for the calculator's printed output.
type DisplayConfig struct {
	SuccessMark string `yaml:"successMark,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Display: DisplayConfig{
			SuccessMark: "✓",
		},
	}
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		candidates := []string{DefaultFile, ".gocalc.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	return nil
}

// validate fills empty settings with defaults and rejects unknown values.
func (c *Config) validate() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Log.Format == "" {
		c.Log.Format = "console"
	}

	if c.Display.SuccessMark == "" {
		c.Display.SuccessMark = "✓"
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
