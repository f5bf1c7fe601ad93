// Package config loads server settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath    = "BILLSPLIT_CONFIG"
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvCurrencyLabel = "CURRENCY_LABEL"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the server configuration.
type Config struct {
	Port          int    `yaml:"port"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	CurrencyLabel string `yaml:"currency_label"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:          8080,
		LogLevel:      "info",
		LogFormat:     LogFormatText,
		CurrencyLabel: "Rs.",
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// BILLSPLIT_CONFIG (if set), then individual environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	// An explicitly empty label is allowed, so check presence rather than value.
	if v, ok := os.LookupEnv(EnvCurrencyLabel); ok {
		c.CurrencyLabel = v
	}
	return nil
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.New("log format must be text or json")
	}
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
