// Package server is the krishi HTTP host. It exposes the chat turn, the
// task list and the scheme catalog over JSON, plus health and metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"krishimitra/internal/logging"
	"krishimitra/internal/metrics"
	"krishimitra/internal/session"
	"krishimitra/internal/store"
	"krishimitra/internal/types"
)

// TaskStore is the part of the store the HTTP host reads and writes.
type TaskStore interface {
	ListTasks(ctx context.Context, opts store.ListOptions) ([]types.Task, error)
	ResolveTaskID(ctx context.Context, prefix string) (string, error)
	CompleteTask(ctx context.Context, id string) error
	Ping() error
}

// SchemeCatalog lists and finds schemes. *catalog.Catalog implements it.
type SchemeCatalog interface {
	Lookup(text string) (types.SchemeRecord, bool)
	All() []types.SchemeRecord
}

// Options configures a Server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	DefaultLanguage types.Language

	Sessions *session.Manager
	Store    TaskStore
	Catalog  SchemeCatalog
	Metrics  *metrics.Metrics    // optional
	Gatherer prometheus.Gatherer // nil disables /metrics
}

// Server is the HTTP host.
type Server struct {
	opts       Options
	engine     *gin.Engine
	httpServer *http.Server
	startTime  time.Time
}

// New builds the server and its routes.
func New(opts Options) *Server {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	opts.DefaultLanguage = opts.DefaultLanguage.OrDefault()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	if opts.Metrics != nil {
		engine.Use(metricsMiddleware(opts.Metrics))
	}

	s := &Server{
		opts:      opts,
		engine:    engine,
		startTime: time.Now(),
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           engine,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadTimeout,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	if s.opts.Gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := s.engine.Group("/v1")
	v1.Use(jsonMiddleware())
	{
		v1.POST("/resolve", s.handleResolve)

		v1.GET("/tasks", s.handleListTasks)
		v1.POST("/tasks/:id/complete", s.handleCompleteTask)

		v1.GET("/schemes", s.handleListSchemes)
		v1.GET("/schemes/:id", s.handleGetScheme)
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Server("HTTP server listening on %s", s.opts.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Server("Shutting down HTTP server (timeout %v)", s.opts.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return <-errCh
}
