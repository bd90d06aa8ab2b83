// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/calibrate/internal/config"
	"github.com/specialistvlad/calibrate/internal/ctxlog"
	"github.com/specialistvlad/calibrate/internal/document"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   Config
	document string
}

// Option customises an App built by NewApp.
type Option func(*App)

// WithDocument replaces the bundled calibration document. Used by tests.
func WithDocument(text string) Option {
	return func(a *App) {
		a.document = text
	}
}

// NewApp is the constructor for the main application. The result is written
// to outW and logs to logW.
//
// A settings file that cannot be loaded is a fatal startup error and makes
// NewApp panic.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	var model *config.Model
	if appConfig.ConfigPath != "" {
		// Startup logger for the settings load; replaced below once the
		// final level and format are known.
		ctx := ctxlog.WithLogger(context.Background(), newLogger(appConfig.LogLevel, appConfig.LogFormat, logW))

		var err error
		model, err = loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
	}

	resolved, err := appConfig.resolve(model)
	if err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	logger := newLogger(resolved.LogLevel, resolved.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", resolved.LogLevel, "format", resolved.LogFormat)
	if model != nil {
		logger.Debug("Settings files applied.", "files", model.Sources)
	}

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   resolved,
		document: document.Raw,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() Config {
	return a.config
}
