package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlgen/internal/config"
	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/internal/templates"
)

type initOptions struct {
	force    bool
	template string
	title    string
}

func initCmd(opts *globalOptions) *cobra.Command {
	iopts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create htmlgen.json and starter documents",
		Long: `Create htmlgen.json with default settings in the project directory,
along with starter documents when the source directory is empty.

Templates:
  minimal  A single index page
  full     Index and about pages with a stylesheet, a table and markdown
  json     A single index page written as JSON

Examples:
  htmlgen init
  htmlgen init --template=full --title="Team Docs"
  htmlgen init -C site --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts, iopts)
		},
	}

	cmd.Flags().BoolVarP(&iopts.force, "force", "f", false, "Overwrite an existing htmlgen.json")
	cmd.Flags().StringVarP(&iopts.template, "template", "t", templates.DefaultTemplate, "Starter template")
	cmd.Flags().StringVar(&iopts.title, "title", "", "Site title used in the starter documents")

	return cmd
}

func runInit(cmd *cobra.Command, opts *globalOptions, iopts initOptions) error {
	out := cmd.OutOrStdout()

	tmpl, err := templates.Get(iopts.template)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		return err
	}
	if config.Exists(dir) && !iopts.force {
		return errors.New("H080").
			WithDetail("htmlgen.json already exists in " + dir).
			WithSuggestion("Pass --force to overwrite it")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("H005").Wrap(err)
	}

	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}
	success(out, "Created %s", cfg.Path())

	source := cfg.SourcePath()
	if entries, err := os.ReadDir(source); err == nil && len(entries) > 0 {
		info(out, "%s is not empty, no starter documents written", source)
		return nil
	}

	created, err := tmpl.Create(source, templates.Config{Title: iopts.title})
	for _, path := range created {
		success(out, "Created %s", path)
	}
	if err != nil {
		return err
	}
	info(out, "Run 'htmlgen serve' to preview it")
	return nil
}
