// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/taibuivan/traders/internal/platform/ctxutil"
	"github.com/taibuivan/traders/internal/platform/middleware"
	"github.com/taibuivan/traders/internal/platform/sec"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "upstream-id")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "upstream-id", seen)
}

func TestVisitor(t *testing.T) {
	var seen string
	handler := middleware.Visitor()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetVisitor(request.Context())
	}))

	known := uuid.NewString()
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"valid id is kept", known, true},
		{"missing id is generated", "", false},
		{"malformed id is replaced", "not-a-uuid", false},
		{"urn form is replaced", "urn:uuid:" + known, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("X-Visitor-ID", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			assert.Equal(t, seen, recorder.Header().Get("X-Visitor-ID"))
			assert.Equal(t, tt.keep, seen == tt.header)
		})
	}
}

type corsConfig struct {
	development bool
}

func (c corsConfig) IsDevelopment() bool  { return c.development }
func (c corsConfig) OriginSuffix() string { return "tradersindia.com" }

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		origin      string
		allowed     bool
	}{
		{"development allows anything", true, "http://localhost:5173", true},
		{"production allows the platform domain", false, "https://www.tradersindia.com", true},
		{"production blocks others", false, "https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(corsConfig{development: tt.development})(okHandler)

			request := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 1, 2)(okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "203.0.113.7:4242"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, other)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

// # Authorization

type stubVerifier map[string]*sec.AuthClaims

func (s stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, errors.New("bad token")
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	verifier := stubVerifier{
		"admin-token":  {Role: string(sec.RoleAdmin)},
		"vendor-token": {Role: string(sec.RoleVendor)},
		"buyer-token":  {Role: string(sec.RoleBuyer)},
	}
	chain := func(role sec.UserRole) http.Handler {
		return middleware.Authenticate(verifier)(middleware.RequireRole(role)(okHandler))
	}

	tests := []struct {
		name   string
		role   sec.UserRole
		header string
		want   int
	}{
		{"anonymous", sec.RoleVendor, "", http.StatusUnauthorized},
		{"malformed header", sec.RoleVendor, "Token abc", http.StatusUnauthorized},
		{"invalid token", sec.RoleVendor, "Bearer forged", http.StatusUnauthorized},
		{"buyer below vendor", sec.RoleVendor, "Bearer buyer-token", http.StatusForbidden},
		{"vendor on vendor route", sec.RoleVendor, "Bearer vendor-token", http.StatusOK},
		{"admin on vendor route", sec.RoleVendor, "bearer admin-token", http.StatusOK},
		{"vendor on admin route", sec.RoleAdmin, "Bearer vendor-token", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			chain(tt.role).ServeHTTP(recorder, request)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
