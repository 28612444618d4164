package server

import (
	stderrors "errors"

	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/docspec"
	"github.com/vango-dev/htmlgen/pkg/markup"
)

const pageStyle = `body{font-family:system-ui,sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;color:#222}` +
	`pre{background:#f6f6f6;padding:1rem;overflow:auto;white-space:pre-wrap}` +
	`.error h1{color:#b00020}`

// indexPage lists entries as links to their rendered pages.
func indexPage(dir string, entries []docspec.Entry) *markup.Page {
	page := markup.NewPage().
		WithLang("en").
		WithMeta(markup.A("charset", "utf-8")).
		WithTitle("Documents").
		WithStyle(pageStyle).
		WithHeading(1, "Documents")

	if len(entries) == 0 {
		page.AddParagraph("No documents found in " + dir + ".")
		return page
	}

	list := markup.NewList(false)
	for _, entry := range entries {
		list.AddItem(markup.NewLink("/"+entry.Name, entry.Name))
	}
	page.AddChild(list)
	return page
}

// errorPage shows err the way the CLI prints it, without colors.
func errorPage(err error) *markup.Page {
	page := markup.NewPage().
		WithLang("en").
		WithMeta(markup.A("charset", "utf-8")).
		WithTitle("Error").
		WithStyle(pageStyle).
		WithBodyAttributes(markup.A("class", "error"))

	var e *errors.Error
	if !stderrors.As(err, &e) {
		return page.
			WithHeading(1, "Error").
			WithPreformatted(err.Error())
	}

	page.AddHeading(1, e.Message)
	page.AddPreformatted(e.FormatCompact())
	if e.Detail != "" {
		page.AddParagraph(e.Detail)
	}
	if e.Suggestion != "" {
		page.AddParagraph(e.Suggestion, markup.A("class", "suggestion"))
	}
	if e.DocURL != "" {
		page.AddParagraph(markup.NewLink(e.DocURL, e.DocURL))
	}
	return page
}
