package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlgen/internal/config"
	"github.com/vango-dev/htmlgen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	dir     string
	verbose bool
	noColor bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "htmlgen",
		Short: "Build HTML pages from document descriptions",
		Long: `htmlgen turns YAML or JSON page descriptions into compact HTML.

Write the page as a list of blocks (headings, paragraphs, lists, tables,
containers, markdown) and htmlgen renders it with the doctype of your
choice. Features include:

  • Static rendering to an output directory
  • Preview server with live reload
  • Publishing to S3-compatible storage
  • Prometheus metrics and OpenTelemetry tracing`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				errors.DisableColors()
			}
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")

	// Add commands
	rootCmd.AddCommand(
		initCmd(opts),
		renderCmd(opts),
		serveCmd(opts),
		publishCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// setupLogging installs a text handler on the default logger.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig loads the configuration of the project directory.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	return config.LoadFromDir(opts.dir)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
