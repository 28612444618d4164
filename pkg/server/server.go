package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlgen/internal/dev"
	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/docspec"
	"github.com/vango-dev/htmlgen/pkg/middleware"
)

// Server is the document preview server.
type Server struct {
	config  *ServerConfig
	logger  *slog.Logger
	router  chi.Router
	builder docspec.Builder
	tracer  trace.Tracer

	// Set when metrics are enabled.
	registry *prometheus.Registry
	metrics  *middleware.Metrics

	// Set when live reload and watching are enabled.
	reload  *dev.ReloadServer
	watcher *dev.Watcher

	mu         sync.Mutex
	httpServer *http.Server
}

// New creates a new Server with the given configuration.
// A nil config uses DefaultServerConfig.
func New(config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	} else {
		config = config.Clone()
	}
	config.applyDefaults()

	s := &Server{
		config:  config,
		logger:  config.Logger.With("component", "server"),
		builder: docspec.Builder{Doctype: config.Doctype},
		tracer:  otel.Tracer("htmlgen/server"),
	}

	if config.Metrics {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.metrics = middleware.NewMetrics(
			middleware.WithRegistry(s.registry),
			middleware.WithNamespace(config.Namespace),
		)
	}

	if config.LiveReload {
		s.reload = dev.NewReloadServer(config.Logger)
	}

	if config.Watch {
		s.watcher = dev.NewWatcher(dev.WatcherConfig{
			Paths:    []string{config.Dir},
			Debounce: config.Debounce,
			Logger:   config.Logger,
		})
		s.watcher.OnChange(s.handleChanges)
	}

	s.router = s.routes()
	return s
}

// routes builds the router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Tracing(
		middleware.WithTracerName("htmlgen/http"),
		middleware.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != dev.ReloadPath
		}),
	))
	r.Use(s.metrics.Handler)

	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	if s.reload != nil {
		r.Get(dev.ReloadPath, s.reload.HandleWebSocket)
	}

	r.Get("/", s.handleIndex)
	r.Get("/{name}", s.handlePage)
	r.Handle("/*", s.static())

	return r
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Registry returns the Prometheus registry, or nil when metrics are disabled.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Reload returns the live reload server, or nil when live reload is disabled.
func (s *Server) Reload() *dev.ReloadServer {
	return s.reload
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.config.ValidateConfig(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.New("H041").
			WithDetail("Could not listen on " + s.config.Address).
			WithSuggestion("Use another port with --port or server.port in htmlgen.json").
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}
	s.mu.Lock()
	s.httpServer = httpServer
	s.mu.Unlock()

	if s.watcher != nil {
		go func() {
			err := s.watcher.Start(ctx)
			if err != nil && !stderrors.Is(err, context.Canceled) {
				s.logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	// Error channel for Serve
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String(), "dir", s.config.Dir)
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New("H041").Wrap(err)
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	// Create timeout context
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.watcher != nil {
		s.watcher.Stop()
	}
	// Reload sockets are hijacked and not tracked by http.Server.
	if s.reload != nil {
		s.reload.Close()
	}

	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer != nil {
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
