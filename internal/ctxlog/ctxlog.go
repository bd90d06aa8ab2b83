// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package ctxlog carries the run's slog.Logger and run id through
// context.Context.
package ctxlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key int

const (
	loggerKey key = iota
	runIDKey
)

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithRunID tags the context with a fresh run id and returns the id. A logger
// already present in ctx is replaced by one that records the id on every entry.
func WithRunID(ctx context.Context) (context.Context, uuid.UUID) {
	id := uuid.New()
	ctx = context.WithValue(ctx, runIDKey, id)
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		ctx = WithLogger(ctx, logger.With("run_id", id.String()))
	}
	return ctx, id
}

// RunID returns the run id stored by WithRunID, or uuid.Nil.
func RunID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(runIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
