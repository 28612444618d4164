package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/vango-dev/htmlgen/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// Title is the site title used in the starter pages.
	Title string

	// Lang is the language of the pages.
	Lang string
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "Hello"
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	return c
}

// Template represents a set of starter documents.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// DefaultTemplate is used when no template is named.
const DefaultTemplate = "minimal"

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"full":    fullTemplate(),
	"json":    jsonTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("H080").
			WithDetailf("Unknown template %q", name).
			WithSuggestion("Available templates: minimal, full, json")
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create writes the template files into dir and returns the paths it
// created, sorted. Files that already exist are left untouched.
func (t *Template) Create(dir string, cfg Config) ([]string, error) {
	cfg = cfg.withDefaults()

	paths := make([]string, 0, len(t.Files))
	for relPath := range t.Files {
		paths = append(paths, relPath)
	}
	sort.Strings(paths)

	var created []string
	for _, relPath := range paths {
		fullPath := filepath.Join(dir, relPath)
		if _, err := os.Stat(fullPath); err == nil {
			continue
		}

		// Execute template
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return created, errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return created, errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		// Write file
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return created, errors.New("H081").Wrap(err)
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return created, errors.New("H081").Wrap(err)
		}
		created = append(created, fullPath)
	}

	return created, nil
}

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A single index page",
		Files: map[string]string{
			"index.yaml": `# Page description rendered by htmlgen.
title: {{printf "%q" .Title}}
lang: {{.Lang}}
meta:
  - {charset: utf-8}
body:
  - heading: {{printf "%q" .Title}}
  - paragraph: Edit index.yaml and run 'htmlgen serve' to preview it.
  - list:
      items: [Headings, Paragraphs, Lists, Tables, Markdown]
`,
		},
	}
}

// fullTemplate returns the full template.
func fullTemplate() *Template {
	return &Template{
		Name:        "full",
		Description: "Index and about pages with a stylesheet, a table and markdown",
		Files: map[string]string{
			"index.yaml": `title: {{printf "%q" .Title}}
lang: {{.Lang}}
meta:
  - {charset: utf-8}
  - {name: viewport, content: "width=device-width, initial-scale=1"}
links:
  - {href: style.css}
body:
  - container:
      kind: header
      children:
        - heading: {{printf "%q" .Title}}
        - container:
            kind: nav
            children:
              - link: {href: /about, text: About}
  - container:
      kind: main
      children:
        - paragraph: Pages are lists of blocks.
          attrs: {class: lead}
        - table:
            caption: Block types
            header: [Block, Renders]
            rows:
              - [heading, "h1 to h6"]
              - [paragraph, p]
              - [list, "ul or ol"]
              - [table, table]
              - [markdown, any]
`,
			"about.yaml": `title: About
lang: {{.Lang}}
meta:
  - {charset: utf-8}
links:
  - {href: style.css}
body:
  - link: {href: /, text: Back}
  - markdown: |
      # About {{.Title}}

      This page is written in **markdown** inside a description.

      | Command | Does |
      |---------|------|
      | render  | writes HTML files |
      | serve   | previews with live reload |
`,
			"style.css": `body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.lead { font-size: 1.25rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 0.25rem 0.5rem; }
`,
		},
	}
}

// jsonTemplate returns the json template.
func jsonTemplate() *Template {
	return &Template{
		Name:        "json",
		Description: "A single index page written as JSON",
		Files: map[string]string{
			"index.json": `{
  "title": {{printf "%q" .Title}},
  "lang": {{printf "%q" .Lang}},
  "meta": [{"charset": "utf-8"}],
  "body": [
    {"heading": {"level": 1, "text": {{printf "%q" .Title}}}},
    {"paragraph": "Edit index.json and run 'htmlgen serve' to preview it."}
  ]
}
`,
		},
	}
}
