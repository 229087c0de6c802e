// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys shared by the HTTP middleware and the
// account handlers.
//
// Keys are values of an unexported type, so no other package can collide
// with them.
package ctxkey

type key uint8

const (
	// RequestIDKey stores the X-Request-ID of the current request.
	RequestIDKey key = iota + 1

	// SessionKey stores the [sec.UserInfo] resolved from the access_token cookie.
	SessionKey

	// LoggerKey stores the request-scoped [*log/slog.Logger].
	LoggerKey
)
