// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mgrodionov/fullstack-homework/internal/platform/constants"
	"github.com/mgrodionov/fullstack-homework/internal/platform/ctxutil"
	"github.com/mgrodionov/fullstack-homework/internal/platform/respond"
	"github.com/mgrodionov/fullstack-homework/internal/platform/sec"
)

// SessionResolver turns a session token into the identity of an existing user.
//
// Defining it here keeps the middleware independent of the account package
// and lets tests inject a stub.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*sec.UserInfo, error)
}

// RequireSession authenticates the request from the session cookie.
//
// # Flow
//  1. Read the [constants.SessionCookieName] cookie; absent means an empty token.
//  2. Resolve it via [SessionResolver], which owns every failure message.
//  3. On failure, write the resolver's error and stop.
//  4. Inject [*sec.UserInfo] and a user-scoped logger into the context.
func RequireSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Cookie Extraction ──────────────────────────────────────────
			token := ""
			if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
				token = cookie.Value
			}

			// ── 2. Session Resolution ─────────────────────────────────────────
			user, err := resolver.ResolveSession(request.Context(), token)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithSession(request.Context(), user)
			ctx = ctxutil.WithLogger(ctx, ctxutil.Logger(ctx).With(slog.String("user_id", user.ID)))

			if recorder, ok := writer.(*statusRecorder); ok {
				recorder.ctx = ctx
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
