// Package templates provides starter documents for new projects.
//
// This package contains the document sets written by 'htmlgen init'.
//
// # Available Templates
//
//   - minimal: A single index page
//   - full: Index and about pages with a stylesheet, a table and markdown
//   - json: A single index page written as JSON
//
// # Usage
//
//	tmpl, err := templates.Get("full")
//	if err != nil {
//	    return err
//	}
//	created, err := tmpl.Create(sourceDir, templates.Config{Title: "Docs"})
//
// # Template Variables
//
// Templates support variable substitution:
//
//	{{.Title}}  - Title of the site
//	{{.Lang}}   - Language of the pages
package templates
