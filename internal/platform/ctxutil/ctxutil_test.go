// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/traders/internal/platform/ctxutil"
	"github.com/taibuivan/traders/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the default fallback and injection.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that AuthClaims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "vendor-7"}, Role: string(sec.RoleVendor)})
	claims := ctxutil.GetAuthUser(ctx)

	require.NotNil(t, claims)
	assert.Equal(t, "vendor-7", claims.Subject)
	assert.Equal(t, "vendor", claims.Role)
}

/*
TestContext_Visitor verifies the gallery visitor round trip.
*/
func TestContext_Visitor(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetVisitor(ctx))

	ctx = ctxutil.WithVisitor(ctx, "0190a1b2-0000-7000-8000-000000000001")
	assert.Equal(t, "0190a1b2-0000-7000-8000-000000000001", ctxutil.GetVisitor(ctx))
}
