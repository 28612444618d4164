package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlgen/pkg/server"
)

type serveOptions struct {
	port    int
	host    string
	source  string
	noWatch bool
	metrics bool
}

func serveCmd(opts *globalOptions) *cobra.Command {
	so := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server with live reload.

Documents are rendered on every request. The server watches the
source directory and refreshes connected browsers on change; a
document that fails to build shows an error overlay instead.

Examples:
  htmlgen serve
  htmlgen serve --port=8080
  htmlgen serve --host=0.0.0.0 --no-watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, so)
		},
	}

	cmd.Flags().IntVarP(&so.port, "port", "p", 0, "Port to run on (default from htmlgen.json)")
	cmd.Flags().StringVarP(&so.host, "host", "H", "", "Host to bind to (default from htmlgen.json)")
	cmd.Flags().StringVarP(&so.source, "source", "s", "", "Source directory (default from htmlgen.json)")
	cmd.Flags().BoolVar(&so.noWatch, "no-watch", false, "Disable file watching and live reload")
	cmd.Flags().BoolVar(&so.metrics, "metrics", false, "Expose Prometheus metrics on /metrics")

	return cmd
}

func runServe(cmd *cobra.Command, opts *globalOptions, so serveOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if so.port > 0 {
		cfg.Server.Port = so.port
	}
	if so.host != "" {
		cfg.Server.Host = so.host
	}
	if so.source != "" {
		cfg.Source = so.source
	}
	if so.noWatch {
		cfg.Server.Watch = false
		cfg.Server.LiveReload = false
	}
	if so.metrics {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := server.New(server.FromConfig(cfg))

	// Handle signals
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	success(out, "Serving %s", cfg.SourcePath())
	info(out, "Local: %s", cfg.ServerURL())
	if cfg.Metrics.Enabled {
		info(out, "Metrics: %s/metrics", cfg.ServerURL())
	}
	fmt.Fprintln(out)

	return srv.Run(ctx)
}
