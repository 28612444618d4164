package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlgen/internal/config"
	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/docspec"
	"github.com/vango-dev/htmlgen/pkg/markup"
)

type renderOptions struct {
	source  string
	output  string
	doctype string
	stdout  bool
}

func renderCmd(opts *globalOptions) *cobra.Command {
	ro := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [name...]",
		Short: "Render documents to HTML files",
		Long: `Render document descriptions to HTML.

Without names every document in the source directory is rendered.
Each document <name>.yaml is written to <output>/<name>.html.

Examples:
  htmlgen render
  htmlgen render index about --output=public
  htmlgen render index --stdout --doctype=xhtml1.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), cfg, args, ro)
		},
	}

	cmd.Flags().StringVarP(&ro.source, "source", "s", "", "Source directory (default from htmlgen.json)")
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "Output directory (default from htmlgen.json)")
	cmd.Flags().StringVarP(&ro.doctype, "doctype", "d", "", "Doctype for documents that do not declare one")
	cmd.Flags().BoolVar(&ro.stdout, "stdout", false, "Write pages to standard output instead of files")

	return cmd
}

func runRender(out io.Writer, cfg *config.Config, names []string, ro renderOptions) error {
	// Apply command-line overrides
	if ro.source != "" {
		cfg.Source = ro.source
	}
	if ro.output != "" {
		cfg.Output.Dir = ro.output
	}
	if ro.doctype != "" {
		cfg.Doctype = ro.doctype
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	entries, err := selectDocuments(cfg.SourcePath(), names)
	if err != nil {
		return err
	}

	builder := docspec.Builder{Doctype: cfg.DefaultDoctype()}
	outDir := cfg.OutputPath()
	if !ro.stdout {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return errors.New("H081").WithDetail("Could not create " + outDir).Wrap(err)
		}
	}

	for _, entry := range entries {
		doc, err := docspec.Load(entry.Path)
		if err != nil {
			return err
		}
		page, err := builder.Build(doc)
		if err != nil {
			return err
		}

		if ro.stdout {
			if _, err := page.WriteTo(out); err != nil {
				return errors.New("H081").Wrap(err)
			}
			io.WriteString(out, "\n")
			continue
		}

		target := filepath.Join(outDir, entry.Name+".html")
		if err := writePage(target, page); err != nil {
			return err
		}
		success(out, "Rendered %s → %s", filepath.Base(entry.Path), target)
	}
	return nil
}

// selectDocuments returns the named documents, or all of them when names
// is empty.
func selectDocuments(dir string, names []string) ([]docspec.Entry, error) {
	if len(names) == 0 {
		return docspec.Find(dir)
	}

	entries := make([]docspec.Entry, 0, len(names))
	for _, name := range names {
		entry, ok := docspec.Lookup(dir, name)
		if !ok {
			return nil, errors.New("H040").
				WithDetailf("No document named %q in %s.", name, dir).
				WithSuggestion("Run 'htmlgen render' without arguments to render every document")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func writePage(path string, page *markup.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("H081").WithDetail("Could not create " + path).Wrap(err)
	}
	if _, err := page.WriteTo(f); err != nil {
		f.Close()
		return errors.New("H081").WithDetail("Could not write " + path).Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New("H081").WithDetail("Could not write " + path).Wrap(err)
	}
	return nil
}
