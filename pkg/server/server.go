// Package server exposes the analysis pipeline over HTTP.
//
// # Routes
//
//	GET    /healthz                          liveness and build version
//	POST   /api/v1/analyze                   analyze text, optionally render artifacts
//	GET    /api/v1/analyses                  list stored analyses, newest first
//	GET    /api/v1/analyses/{id}             fetch a stored analysis
//	DELETE /api/v1/analyses/{id}             delete a stored analysis
//	GET    /api/v1/analyses/{id}/render      render ?kind=graph|stats&format=json|dot|svg
//
// Errors are returned as {"error": "...", "code": "..."} with the HTTP
// status derived from the [errors.Code]. Every response carries an
// X-Request-ID header, generated when the client does not send one.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/suffixlens/pkg/pipeline"
	"github.com/matzehuels/suffixlens/pkg/store"
)

// Defaults for [Config].
const (
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
)

// Config wires a [Server] to its collaborators.
type Config struct {
	// Runner executes analyses. Required.
	Runner *pipeline.Runner

	// Store keeps analysis history. Nil selects an in-memory store.
	Store store.Store

	// Options are the base pipeline options. Requests may change layout
	// spacing and Refresh but never the input guard.
	Options pipeline.Options

	Logger       *log.Logger
	MaxBodyBytes int64
}

// Server is the HTTP API. Create it with [New].
type Server struct {
	runner  *pipeline.Runner
	store   store.Store
	opts    pipeline.Options
	logger  *log.Logger
	maxBody int64
	router  chi.Router
}

// New creates a server and registers its routes.
func New(cfg Config) *Server {
	s := &Server{
		runner:  cfg.Runner,
		store:   cfg.Store,
		opts:    cfg.Options,
		logger:  cfg.Logger,
		maxBody: cfg.MaxBodyBytes,
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/analyses", s.handleList)
		r.Get("/analyses/{id}", s.handleGet)
		r.Delete("/analyses/{id}", s.handleDelete)
		r.Get("/analyses/{id}/render", s.handleRender)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "route not found", Code: "NOT_FOUND"})
	})

	s.router = r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully, waiting at most shutdownTimeout for open requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
