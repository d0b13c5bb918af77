// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /solve     solve one matrix, see api.SolveRequest
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus scrape endpoint
//
// Status codes for /solve: 200 solved (optimal, or within the configured node
// budget), 400 malformed JSON, 413 body too large, 422 invalid matrix,
// 504 deadline hit (body still carries the best tour found).
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/tspbb/internal/cache"
	"github.com/katalvlaran/tspbb/internal/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg        config.Config
	cache      cache.Cache
	logger     *log.Logger
	router     chi.Router
	httpServer *http.Server
	listener   net.Listener
}

// New builds the router. A nil cache disables caching; a nil logger falls
// back to log.Default().
func New(cfg config.Config, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{cfg: cfg, cache: c, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.loggingMiddleware)

	r.Post("/solve", s.handleSolve)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.router = r
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address and serves in the background. It
// returns the bound address, which differs from the configured one for ":0".
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return "", fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	s.listener = ln
	addr := ln.Addr().String()
	s.logger.Info("listening", "addr", addr)

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", "err", err)
		}
	}()

	return addr, nil
}

// Run starts the server and blocks until ctx is done, then shuts down
// gracefully within grace.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	if _, err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.logger.Info("shutting down")

	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests, waits for in-flight ones, and closes
// the cache.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if cerr := s.cache.Close(); err == nil {
		err = cerr
	}
	return err
}
