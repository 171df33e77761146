// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package config loads the command line front end's settings.
//
// Settings are resolved in order: built-in defaults, the YAML file (when
// one is given), SQLITEMGR_* environment variables, then command line flags
// applied by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig contains connection manager settings.
type DatabaseConfig struct {
	// Path is connected to on startup when set.
	Path string `yaml:"path"`

	// Strict returns failures as errors instead of logging them.
	Strict bool `yaml:"strict"`

	// BusyTimeout is how long SQLite waits on a locked database.
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is one of console, text, json.
	Format string `yaml:"format"`

	// Output is stdout or stderr.
	Output string `yaml:"output"`

	// File, when its path is set, receives a copy of every log line.
	File LogFileConfig `yaml:"file"`
}

// LogFileConfig contains rotating log file settings.
type LogFileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			BusyTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
			File: LogFileConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
				Compress:   true,
			},
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SQLITEMGR_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SQLITEMGR_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Database.Strict = b
		}
	}
	if v := os.Getenv("SQLITEMGR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SQLITEMGR_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SQLITEMGR_LOG_FILE"); v != "" {
		cfg.Logging.File.Path = v
	}
}

// Validate checks that every setting has an accepted value.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: expected debug, info, warn or error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "text", "json":
	default:
		return fmt.Errorf("logging.format %q: expected console, text or json", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("logging.output %q: expected stdout or stderr", c.Logging.Output)
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout must not be negative")
	}
	return nil
}
