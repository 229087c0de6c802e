// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrodionov/fullstack-homework/internal/platform/ctxutil"
	"github.com/mgrodionov/fullstack-homework/internal/platform/sec"
)

/*
TestRequestID round-trips the correlation ID.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.RequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0192d1c4-req")
	assert.Equal(t, "0192d1c4-req", ctxutil.RequestID(ctx))
}

/*
TestLogger falls back to the default logger outside a request.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, slog.Default(), ctxutil.Logger(ctx))

	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))
	ctx = ctxutil.WithLogger(ctx, logger)

	ctxutil.Logger(ctx).Info("account_registered")
	assert.Contains(t, buffer.String(), `"msg":"account_registered"`)

	// A nil logger never reaches callers
	assert.Equal(t, slog.Default(), ctxutil.Logger(ctxutil.WithLogger(context.Background(), nil)))
}

/*
TestSession stores the identity of a verified session.
*/
func TestSession(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.Session(ctx))

	user := &sec.UserInfo{ID: "0192d1c4-1111-7000-8000-000000000001", Email: "a@x.com"}
	ctx = ctxutil.WithSession(ctx, user)

	got := ctxutil.Session(ctx)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}
