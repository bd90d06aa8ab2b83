// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/calibrate/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Logging flags that were not given on the command line are left empty so
// that a settings file can still provide them.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		logLevel   string
		logFormat  string
		configPath string
		ran        bool
	)

	cmd := &cobra.Command{
		Use:   "calibrate [flags]",
		Short: "Sum the calibration values of the bundled calibration document.",
		Long: `calibrate - recovers the calibration values of the amended calibration document.

Each line's value is its first and last digit, where digits may also be spelled
out as "zero" through "nine". The document is compiled into the binary.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			ran = true
			return nil
		},
	}
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVar(&logLevel, "log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&logFormat, "log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	flags.StringVarP(&configPath, "config", "c", "", "Path to a settings file (.hcl, .yaml) or a directory of them.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !ran {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	if !flags.Changed("log-level") {
		logLevel = ""
	}
	if !flags.Changed("log-format") {
		logFormat = ""
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		LogLevel:   strings.ToLower(logLevel),
		LogFormat:  strings.ToLower(logFormat),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
