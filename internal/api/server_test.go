// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/traders/internal/api"
	"github.com/taibuivan/traders/internal/contact"
	"github.com/taibuivan/traders/internal/content"
	"github.com/taibuivan/traders/internal/dashboard"
	"github.com/taibuivan/traders/internal/gallery"
	"github.com/taibuivan/traders/internal/platform/config"
	"github.com/taibuivan/traders/internal/platform/middleware"
	"github.com/taibuivan/traders/internal/platform/notify"
	"github.com/taibuivan/traders/internal/platform/sec"
	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/internal/seed"
)

// # Fixtures

type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if role, ok := sec.ParseRole(token); ok {
		return &sec.AuthClaims{Role: string(role)}, nil
	}
	return nil, errors.New("unknown token")
}

func newTestServer(t *testing.T, verifier middleware.TokenVerifier, dependencies api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	set, err := seed.Load(logger)
	require.NoError(t, err)

	contentService, err := content.NewService(set.Content)
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(dependencies, logger)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Products:  product.NewHandler(product.NewService(product.NewMemoryRepository(set.Products), logger)),
		Gallery:   gallery.NewHandler(gallery.NewService(gallery.NewMemoryRepository(set.Gallery), gallery.NewMemoryLikeStore(), logger)),
		Content:   content.NewHandler(contentService),
		Contact:   contact.NewHandler(contact.NewService(notify.NewLogNotifier(logger), 0, logger)),
		Dashboard: dashboard.NewHandler(dashboard.NewService(set.Dashboard)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	return api.NewServer(ctx, cfg, logger, verifier, handlers).Handler()
}

func do(t *testing.T, handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// # Tests

func TestServer_Health(t *testing.T) {
	server := newTestServer(t, nil, api.HealthDependencies{})

	response := do(t, server, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.NotEmpty(t, response.Header().Get("X-Request-ID"))

	response = do(t, server, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `"status":"ready"`)
}

func TestServer_ReadinessDegraded(t *testing.T) {
	server := newTestServer(t, nil, api.HealthDependencies{
		Database: func(context.Context) error { return nil },
		Cache:    func(context.Context) error { return errors.New("connection refused") },
	})

	response := do(t, server, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, response.Code)
	assert.Contains(t, response.Body.String(), `"status":"degraded"`)
	assert.Contains(t, response.Body.String(), "connection refused")
}

func TestServer_Products(t *testing.T) {
	server := newTestServer(t, nil, api.HealthDependencies{})

	response := do(t, server, http.MethodGet, "/api/v1/products?sort=price-low&limit=3", "", nil)
	require.Equal(t, http.StatusOK, response.Code)

	var page struct {
		Data []struct {
			Name         string `json:"name"`
			PriceDisplay string `json:"price_display"`
		} `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &page))
	require.Len(t, page.Data, 3)
	assert.Equal(t, "₹49,999", page.Data[0].PriceDisplay)
	assert.Equal(t, 8, page.Meta.Total)

	response = do(t, server, http.MethodGet, "/api/v1/products?sort=cheapest", "", nil)
	assert.Equal(t, http.StatusBadRequest, response.Code)

	response = do(t, server, http.MethodGet, "/api/v1/products/enterprise-software-license", "", nil)
	assert.Equal(t, http.StatusOK, response.Code)
}

func TestServer_GalleryVisitorLikes(t *testing.T) {
	server := newTestServer(t, nil, api.HealthDependencies{})

	response := do(t, server, http.MethodGet, "/api/v1/gallery", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	visitor := response.Header().Get("X-Visitor-ID")
	require.NotEmpty(t, visitor)

	headers := map[string]string{"X-Visitor-ID": visitor}
	response = do(t, server, http.MethodPost, "/api/v1/gallery/6/like", "", headers)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `"liked":true`)
	assert.Equal(t, visitor, response.Header().Get("X-Visitor-ID"))

	response = do(t, server, http.MethodGet, "/api/v1/gallery/likes", "", headers)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "[6]")
}

func TestServer_ContentAndContact(t *testing.T) {
	server := newTestServer(t, nil, api.HealthDependencies{})

	response := do(t, server, http.MethodGet, "/api/v1/content/faq?q=become", "", nil)
	require.Equal(t, http.StatusOK, response.Code)

	var faqs struct {
		Data []content.FAQ `json:"data"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &faqs))
	require.NotEmpty(t, faqs.Data)
	assert.Contains(t, faqs.Data[0].AnswerHTML, "<strong>Become a Vendor</strong>")

	body := `{"first_name":"Sarah","last_name":"Chen","email":"sarah@globalimports.com","message":"Looking for bulk office furniture."}`
	response = do(t, server, http.MethodPost, "/api/v1/contact", body, nil)
	assert.Equal(t, http.StatusAccepted, response.Code)

	response = do(t, server, http.MethodPost, "/api/v1/contact", `{"email":"nope"}`, nil)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestServer_Dashboards(t *testing.T) {
	t.Run("not mounted without verifier", func(t *testing.T) {
		server := newTestServer(t, nil, api.HealthDependencies{})
		response := do(t, server, http.MethodGet, "/api/v1/dashboard/admin", "", nil)
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("role checks", func(t *testing.T) {
		server := newTestServer(t, stubVerifier{}, api.HealthDependencies{})

		tests := []struct {
			path  string
			token string
			want  int
		}{
			{"/api/v1/dashboard/admin", "", http.StatusUnauthorized},
			{"/api/v1/dashboard/admin", "vendor", http.StatusForbidden},
			{"/api/v1/dashboard/admin", "admin", http.StatusOK},
			{"/api/v1/dashboard/vendor", "vendor", http.StatusOK},
		}

		for _, tt := range tests {
			headers := map[string]string{}
			if tt.token != "" {
				headers["Authorization"] = "Bearer " + tt.token
			}
			response := do(t, server, http.MethodGet, tt.path, "", headers)
			assert.Equal(t, tt.want, response.Code, "%s as %q", tt.path, tt.token)
		}
	})
}
