// Package server exposes the generation service over HTTP: batch runs,
// history queries, and health probes.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"manna/internal/archive"
	"manna/internal/batch"
	"manna/internal/config"
	"manna/internal/devotional"
	"manna/internal/exclusion"
	"manna/internal/logging"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// BatchRunner executes generation batches. Satisfied by *batch.Controller.
type BatchRunner interface {
	Run(ctx context.Context, req batch.Request) (*batch.Response, error)
	Running() bool
}

// HistoryStore answers archive queries. Satisfied by *archive.Store.
type HistoryStore interface {
	List(ctx context.Context, filter archive.Filter) ([]devotional.Record, error)
	Count(ctx context.Context) (int, error)
}

// HealthChecker verifies the upstream generation service is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server is the HTTP front of the daemon.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	runner  BatchRunner
	history HistoryStore
	checker HealthChecker

	exclusions *exclusion.Store
	started    time.Time

	http     *http.Server
	listener net.Listener
}

// Option customizes a Server.
type Option func(*Server)

// WithHistory attaches the archive store backing /api/history.
func WithHistory(h HistoryStore) Option {
	return func(s *Server) { s.history = h }
}

// WithHealthChecker attaches an upstream probe for /healthz.
func WithHealthChecker(c HealthChecker) Option {
	return func(s *Server) { s.checker = c }
}

// New constructs the server around a batch runner.
func New(cfg *config.Config, logger *slog.Logger, runner BatchRunner, opts ...Option) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "api"),
		runner:     runner,
		exclusions: exclusion.NewStore(cfg.Paths.ExclusionFile, logger),
		started:    time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.http = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start binds the configured address and serves until Shutdown or a fatal
// listener error.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Paths.APIBind)
	if err != nil {
		return err
	}
	s.listener = listener
	s.logger.Info("api listening", logging.String("addr", listener.Addr().String()))
	if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr reports the bound address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	err := s.http.Shutdown(ctx)
	s.logger.Info("api stopped")
	return err
}
