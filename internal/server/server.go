package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/internal/pipeline"
)

// Server exposes the pipeline over HTTP. Extractions are serialized
// with a mutex: they are CPU-bound and share the temp directory, so
// running them concurrently buys nothing. Cache hits bypass the lock.
type Server struct {
	cfg      *config.Config
	logger   logger.Logger
	pipeline pipeline.Pipeline
	cache    *resultCache
	started  time.Time

	mu sync.Mutex // serializes pipeline runs
}

// New creates a new Server instance
func New(cfg *config.Config, log logger.Logger, pipe pipeline.Pipeline) *Server {
	return &Server{
		cfg:      cfg,
		logger:   log,
		pipeline: pipe,
		cache:    newResultCache(time.Duration(cfg.Server.CacheTTL) * time.Second),
	}
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transcript", s.handleTranscript)
	mux.HandleFunc("/healthz", s.handleHealth)

	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: mux,
	}

	s.started = time.Now()
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "HTTP server listening on %s", s.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
