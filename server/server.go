package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"showmarket/api"
	"showmarket/logging"
	"showmarket/types"
)

const (
	defaultAddr         = ":8080"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	shutdownTimeout     = 30 * time.Second
)

// Options configures the proxy server.
type Options struct {
	Addr          string
	AllowedOrigin string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	WindowSize    int
}

// Server exposes the marketplace catalog as a JSON HTTP API.
type Server struct {
	catalog api.Catalog
	logger  *slog.Logger
	opts    Options
	server  *http.Server
}

// New creates a proxy server backed by catalog.
func New(catalog api.Catalog, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Addr == "" {
		opts.Addr = defaultAddr
	}
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = defaultReadTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.WindowSize < 1 {
		opts.WindowSize = types.DefaultWindowSize
	}

	s := &Server{
		catalog: catalog,
		logger:  logger,
		opts:    opts,
	}
	s.server = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
	}
	return s
}

// Handler returns the HTTP handler with all API routes and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/captains", s.handleCaptains)
	mux.HandleFunc("GET /api/items", s.handleItems)
	mux.HandleFunc("GET /api/item", s.handleItem)
	mux.HandleFunc("GET /api/listings", s.handleListings)
	mux.HandleFunc("GET /api/listing", s.handleListing)
	mux.HandleFunc("GET /api/listing/summary", s.handleListingSummary)
	mux.HandleFunc("GET /api/pager", s.handlePager)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(corsMiddleware(s.opts.AllowedOrigin, mux))
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.opts.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
