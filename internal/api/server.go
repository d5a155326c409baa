// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api is the composition root of the HTTP transport.

It builds the chi router, applies the global middleware chain and mounts
every domain handler under /api/v1. Domain packages never see the
[http.Server]; only this package and cmd/api do.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/traders/internal/contact"
	"github.com/taibuivan/traders/internal/content"
	"github.com/taibuivan/traders/internal/dashboard"
	"github.com/taibuivan/traders/internal/gallery"
	"github.com/taibuivan/traders/internal/platform/config"
	"github.com/taibuivan/traders/internal/platform/constants"
	"github.com/taibuivan/traders/internal/platform/middleware"
	"github.com/taibuivan/traders/internal/product"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups the domain handler sets.
type Handlers struct {
	// Liveness is GET /health. It answers 200 while the process runs.
	Liveness http.HandlerFunc

	// Readiness is GET /ready. It answers 503 when a configured store is down.
	Readiness http.HandlerFunc

	Products *product.Handler
	Gallery  *gallery.Handler
	Content  *content.Handler
	Contact  *contact.Handler

	// Dashboard is mounted only together with a token verifier.
	Dashboard *dashboard.Handler
}

// # Server Initialization

// NewServer builds the router. verifier may be nil, in which case the
// dashboard routes are not mounted at all.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/products", h.Products.Routes())
		api.With(middleware.Visitor()).Mount("/gallery", h.Gallery.Routes())
		api.Mount("/content", h.Content.Routes())
		api.Mount("/contact", h.Contact.Routes())

		if verifier != nil && h.Dashboard != nil {
			api.With(middleware.Authenticate(verifier)).Mount("/dashboard", h.Dashboard.Routes())
		}
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe blocks until the server is closed or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits up to timeout for
// in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
