// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"fmt"

	"github.com/specialistvlad/calibrate/internal/config"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty logging fields fall back to the settings file, then to the defaults.
type Config struct {
	ConfigPath string // settings file or directory, optional

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validateLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve fills the fields left empty in c from the settings model and then
// from the defaults.
func (c Config) resolve(m *config.Model) (Config, error) {
	if m != nil {
		if c.LogLevel == "" {
			c.LogLevel = m.LogLevel
		}
		if c.LogFormat == "" {
			c.LogFormat = m.LogFormat
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}

	if err := validateLogging(c.LogLevel, c.LogFormat); err != nil {
		return c, err
	}
	return c, nil
}

func validateLogging(level, format string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}
	switch format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
	return nil
}
