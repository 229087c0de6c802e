// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil reads and writes the per-request values the middleware
// chain attaches to a [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/mgrodionov/fullstack-homework/internal/platform/ctxkey"
	"github.com/mgrodionov/fullstack-homework/internal/platform/sec"
)

// # Request Tracing

// WithRequestID attaches the correlation ID echoed in X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.RequestIDKey, id)
}

// RequestID returns the correlation ID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.RequestIDKey).(string)
	return id
}

// # Structured Logging

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.LoggerKey, logger)
}

// Logger returns the request-scoped logger.
//
// Background work and tests that never pass through the middleware get
// [slog.Default].
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.LoggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Session

// WithSession attaches the identity of a verified session.
func WithSession(ctx context.Context, user *sec.UserInfo) context.Context {
	return context.WithValue(ctx, ctxkey.SessionKey, user)
}

// Session returns the identity attached by [WithSession], or nil for an
// anonymous request.
func Session(ctx context.Context) *sec.UserInfo {
	user, _ := ctx.Value(ctxkey.SessionKey).(*sec.UserInfo)
	return user
}
