// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/calibrate/internal/calibration"
	"github.com/specialistvlad/calibrate/internal/ctxlog"
	"github.com/specialistvlad/calibrate/internal/document"
)

// Run computes the total calibration value of the document and prints it.
// Nothing is printed when any line fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx, _ = ctxlog.WithRunID(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	lines := document.Lines(a.document)
	logger.Info("Calibration document loaded.", "lines", len(lines), "bytes", len(a.document))

	total, err := calibration.Sum(ctx, lines)
	if err != nil {
		logger.Error("Calibration failed.", "error", err)
		return fmt.Errorf("calibration failed: %w", err)
	}

	if _, err := fmt.Fprintf(a.outW, "Calibration value: %d\n", total); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	logger.Info("Calibration finished.", "total", total)

	logger.Debug("App.Run method finished.")
	return nil
}
