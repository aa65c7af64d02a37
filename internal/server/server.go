// package server contains middleware & handlers for the playlist web service
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/setlist/internal/metrics"
	"github.com/desertthunder/setlist/internal/registry"
	"github.com/desertthunder/setlist/internal/shared"
	"github.com/prometheus/client_golang/prometheus"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, authentication, CORS, rate limiting, etc.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the playlist service.
// Implementations handle specific endpoints (playlists, health).
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the method-qualified patterns this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
// Implementations register handlers, apply middleware, and configure the HTTP server.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

// Options configures a [Server].
type Options struct {
	Config     *shared.Config
	Registry   *registry.Registry
	Logger     *log.Logger
	Prometheus *prometheus.Registry
}

// Server serves the playlist API over HTTP.
type Server struct {
	config shared.ServerConfig
	router *BasicRouter
	http   *http.Server
	logger *log.Logger
}

// New wires the router, middleware and handlers for the given registry.
//
// Nil options fall back to the default config, a fresh registry, a stderr logger
// and a private Prometheus registry.
func New(opts Options) *Server {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Registry == nil {
		opts.Registry = registry.New()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Prometheus == nil {
		opts.Prometheus = metrics.NewRegistry()
	}

	logger := shared.WithLogger(opts.Logger, "component", "server")
	m := metrics.New(opts.Prometheus, opts.Registry)

	router := NewBasicRouter()
	router.Use(Recovery(logger), RequestID(), Instrument(logger, m))
	if rl := opts.Config.RateLimit; rl.Enabled {
		router.Use(NewRateLimiter(rl.RequestsPerSecond, rl.Burst).Middleware())
	}

	router.Handler(NewPlaylistHandler(opts.Registry, m, logger))
	router.Handler(NewHealthHandler(opts.Registry))
	router.Handle(http.MethodGet, "/metrics", metrics.Handler(opts.Prometheus))

	cfg := opts.Config.Server
	return &Server{
		config: cfg,
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:         cfg.Address(),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.config.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
