// Package markdown converts Markdown into markup nodes.
//
// Conversion happens once, when the Block is created; the resulting HTML is
// embedded verbatim wherever the Block is added, like any other custom
// Renderable:
//
//	block, err := markdown.Convert("# Notes\n\nSome *emphasis*.")
//	if err != nil {
//	    return err
//	}
//	page.AddHTML(block)
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/vango-dev/htmlgen/pkg/markup"
)

// Options configures a Converter.
type Options struct {
	// GFM enables the GitHub Flavored Markdown extensions (tables,
	// strikethrough, autolinks, task lists).
	GFM bool

	// HeadingIDs generates id attributes for headings.
	HeadingIDs bool

	// Unsafe passes raw HTML in the source through. When false raw HTML is
	// replaced by a comment.
	Unsafe bool

	// XHTML closes void elements as <br />.
	XHTML bool

	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
}

// DefaultOptions enables GFM and nothing else.
var DefaultOptions = Options{GFM: true}

// Converter turns Markdown source into Blocks. A Converter is safe for
// concurrent use.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with the given options.
func NewConverter(opts Options) *Converter {
	var (
		exts    []goldmark.Extender
		parsers []parser.Option
		renders []renderer.Option
	)
	if opts.GFM {
		exts = append(exts, extension.GFM)
	}
	if opts.HeadingIDs {
		parsers = append(parsers, parser.WithAutoHeadingID())
	}
	if opts.Unsafe {
		renders = append(renders, html.WithUnsafe())
	}
	if opts.XHTML {
		renders = append(renders, html.WithXHTML())
	}
	if opts.HardWraps {
		renders = append(renders, html.WithHardWraps())
	}

	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithParserOptions(parsers...),
			goldmark.WithRendererOptions(renders...),
		),
	}
}

var defaultConverter = NewConverter(DefaultOptions)

// Convert converts source with DefaultOptions.
func Convert(source string) (*Block, error) {
	return defaultConverter.Convert(source)
}

// Convert converts source into a Block.
func (c *Converter) Convert(source string) (*Block, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return nil, err
	}
	return &Block{
		source: source,
		html:   strings.TrimRight(buf.String(), "\n"),
	}, nil
}

// Block is converted Markdown. It implements markup.Renderable.
type Block struct {
	source string
	html   string
}

var _ markup.Renderable = (*Block)(nil)

// Source returns the Markdown the block was converted from.
func (b *Block) Source() string { return b.source }

// RenderHTML returns the converted HTML.
func (b *Block) RenderHTML() string {
	if b == nil {
		return ""
	}
	return b.html
}

// Node wraps the block as a markup node, so it can be passed wherever
// content is accepted.
func (b *Block) Node() markup.Node {
	return markup.NewCustom(b)
}
