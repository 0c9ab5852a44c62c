// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost presentation boundary.
  - It is the composition root for the chi router.
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/ycinema/internal/browse"
	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/homepage"
	"github.com/taibuivan/ycinema/internal/importer"
	"github.com/taibuivan/ycinema/internal/platform/config"
	"github.com/taibuivan/ycinema/internal/platform/constants"
	"github.com/taibuivan/ycinema/internal/platform/metrics"
	"github.com/taibuivan/ycinema/internal/platform/middleware"
	"github.com/taibuivan/ycinema/internal/platform/sec"
	"github.com/taibuivan/ycinema/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// FallbackCatalogPath is served verbatim at /movies.json.
	FallbackCatalogPath string

	// Auth handles console sign-in.
	Auth *auth.Handler

	// Browse serves the public storefront reads.
	Browse *browse.Handler

	// Content is the console CRUD over catalog items.
	Content *catalog.AdminHandler

	// Settings manages the homepage layout and Top 10 order.
	Settings *homepage.Handler

	// Import accepts catalog documents.
	Import *importer.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Handler)
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/movies.json", func(writer http.ResponseWriter, request *http.Request) {
		http.ServeFile(writer, request, h.FallbackCatalogPath)
	})

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/catalog", h.Browse.Routes())

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireRole(sec.RoleViewer))

			admin.Get("/dashboard", h.Content.DashboardHandler)
			admin.Mount("/content", h.Content.Routes())
			admin.Mount("/settings", h.Settings.Routes())
			admin.With(middleware.RequireRole(sec.RoleAdmin)).Post("/import", h.Import.ServeHTTP)
		})
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

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server. It blocks until the server is closed.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
