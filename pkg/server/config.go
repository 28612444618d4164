package server

import (
	"log/slog"
	"os"
	"time"

	"github.com/vango-dev/htmlgen/internal/config"
	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/markup"
)

// ServerConfig holds configuration for the preview server.
type ServerConfig struct {
	// Address is the address to listen on (e.g., ":8080" or "localhost:4000").
	// Default: "localhost:4000".
	Address string

	// Dir is the directory holding the document descriptions.
	// Default: ".".
	Dir string

	// Doctype is used for documents that do not declare one.
	// Default: HTML5.
	Doctype markup.Doctype

	// Live reload

	// Watch enables watching Dir for changes.
	Watch bool

	// LiveReload injects the reload script into pages and mounts the
	// reload socket. Without Watch nothing triggers a reload.
	LiveReload bool

	// Debounce is how long the watcher waits before reporting changes.
	// Default: 200ms.
	Debounce time.Duration

	// Metrics

	// Metrics enables Prometheus metrics and the /metrics endpoint.
	Metrics bool

	// Namespace is the Prometheus namespace.
	// Default: "htmlgen".
	Namespace string

	// Server lifecycle

	// ReadHeaderTimeout is the maximum time to read request headers.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// IdleTimeout is the maximum time to wait for the next request.
	// Default: 60 seconds.
	IdleTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// Logger receives server logs. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:4000",
		Dir:               ".",
		Doctype:           markup.HTML5,
		Debounce:          config.DefaultDebounce,
		Namespace:         config.DefaultNamespace,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// FromConfig builds a ServerConfig from the project configuration.
func FromConfig(cfg *config.Config) *ServerConfig {
	c := DefaultServerConfig()
	c.Address = cfg.ServerAddress()
	c.Dir = cfg.SourcePath()
	c.Doctype = cfg.DefaultDoctype()
	c.Watch = cfg.Server.Watch
	c.LiveReload = cfg.Server.LiveReload
	c.Debounce = cfg.DebounceInterval()
	c.Metrics = cfg.Metrics.Enabled
	c.Namespace = cfg.Metrics.Namespace
	return c
}

// Clone returns a copy of the ServerConfig.
func (c *ServerConfig) Clone() *ServerConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// ValidateConfig checks that the source directory exists.
func (c *ServerConfig) ValidateConfig() error {
	info, err := os.Stat(c.Dir)
	if err != nil {
		return errors.New("H025").
			WithDetail("Source directory " + c.Dir + " does not exist").
			WithSuggestion("Create it or set \"source\" in htmlgen.json").
			Wrap(err)
	}
	if !info.IsDir() {
		return errors.New("H025").
			WithDetail(c.Dir + " is not a directory")
	}
	return nil
}

// applyDefaults fills zero values from DefaultServerConfig.
func (c *ServerConfig) applyDefaults() {
	defaults := DefaultServerConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.Dir == "" {
		c.Dir = defaults.Dir
	}
	if c.Debounce == 0 {
		c.Debounce = defaults.Debounce
	}
	if c.Namespace == "" {
		c.Namespace = defaults.Namespace
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
