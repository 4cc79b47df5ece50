package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"devops/info/internal/config"
	"devops/info/internal/info"

	"github.com/rs/zerolog"
)

// Server wires configuration, dependencies and HTTP routing together.
type Server struct {
	cfg     config.Config
	log     zerolog.Logger
	info    *info.Provider
	metrics *metrics
}

// New captures the process start time and prepares shared dependencies.
// Options are forwarded to the info provider.
func New(cfg config.Config, log zerolog.Logger, opts ...info.Option) (*Server, error) {
	provider := info.NewProvider(time.Now().UTC(), opts...)

	m, err := newMetrics(provider)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	return &Server{
		cfg:     cfg,
		log:     log,
		info:    provider,
		metrics: m,
	}, nil
}

// Handler exposes the routed handler, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Run starts the HTTP server and blocks until the context is cancelled or an unrecoverable error occurs.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Addr()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
		IdleTimeout:  s.cfg.HTTP.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	s.log.Info().
		Str("addr", addr).
		Bool("debug", bool(s.cfg.Debug)).
		Time("started_at", s.info.StartedAt()).
		Msg("Starting DevOps Info Service")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.log.Info().Msg("http server stopped")
	return nil
}
