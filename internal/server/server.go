// Package server exposes the catalog over HTTP: a JSON API for filtering,
// identification and preferences, plus the built static site.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/prefs"
)

// Options configures a Server.
type Options struct {
	Addr    string
	SiteDir string // built site served at /; empty disables it
	Version string
	Plants  []catalog.Plant
	Prefs   prefs.Store
	Logger  *zap.Logger
}

// Server is the floractl HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
	plants     []catalog.Plant
	prefs      prefs.Store
	version    string
	metrics    *metrics
	registry   *prometheus.Registry
}

// New creates a Server. The catalog is read-only for the server's lifetime.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	plants := opts.Plants
	if plants == nil {
		plants = []catalog.Plant{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	mux := http.NewServeMux()
	s := &Server{
		logger:   logger,
		mux:      mux,
		plants:   plants,
		prefs:    opts.Prefs,
		version:  opts.Version,
		metrics:  newMetrics(reg),
		registry: reg,
	}
	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.instrument(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.registerRoutes(opts.SiteDir)
	return s
}

func (s *Server) registerRoutes(siteDir string) {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/plants", s.handleListPlants)
	s.mux.HandleFunc("GET /api/v1/plants/{id}", s.handleGetPlant)
	s.mux.HandleFunc("POST /api/v1/identify", s.handleIdentify)
	s.mux.HandleFunc("GET /api/v1/preferences/theme", s.handleGetTheme)
	s.mux.HandleFunc("PUT /api/v1/preferences/theme", s.handlePutTheme)
	s.mux.HandleFunc("POST /api/v1/preferences/theme/toggle", s.handleToggleTheme)
	s.mux.HandleFunc("GET /api/", s.handleAPINotFound)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	if siteDir != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(siteDir)))
		s.logger.Debug("serving static site", zap.String("dir", siteDir))
	}
}

// Handler returns the instrumented root handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}
