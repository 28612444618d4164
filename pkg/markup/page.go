package markup

import (
	"io"
	"strings"
)

// Doctype is the version of the HTML standard a page declares.
//
// The doctype only changes the declaration line, the root element's
// attributes and how void elements are closed. Pages are not checked for
// conformance with the chosen version.
type Doctype uint8

const (
	HTML5    Doctype = iota // <!DOCTYPE html>
	HTML4                   // HTML 4.01 Transitional
	XHTML1_0                // XHTML 1.0 Transitional
	XHTML1_1                // XHTML 1.1
)

// String returns the doctype's short name.
func (d Doctype) String() string {
	switch d {
	case HTML4:
		return "html4"
	case XHTML1_0:
		return "xhtml1.0"
	case XHTML1_1:
		return "xhtml1.1"
	default:
		return "html5"
	}
}

// ParseDoctype returns the doctype for a short name as produced by String.
// Matching is case-insensitive.
func ParseDoctype(name string) (Doctype, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "html5", "html":
		return HTML5, true
	case "html4", "html4.01":
		return HTML4, true
	case "xhtml1.0", "xhtml1_0", "xhtml":
		return XHTML1_0, true
	case "xhtml1.1", "xhtml1_1":
		return XHTML1_1, true
	}
	return HTML5, false
}

// Declaration returns the <!DOCTYPE> line for the version.
func (d Doctype) Declaration() string {
	switch d {
	case HTML4:
		return `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/HTML4/loose.dtd">`
	case XHTML1_0:
		return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`
	case XHTML1_1:
		return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">`
	default:
		return "<!DOCTYPE html>"
	}
}

// RootAttributes returns the attributes the version requires on <html>.
func (d Doctype) RootAttributes() *Attributes {
	switch d {
	case XHTML1_0:
		return NewAttributes(A("xmlns", "http://www.w3.org/1999/xhtml"))
	case XHTML1_1:
		return NewAttributes(
			A("xmlns", "http://www.w3.org/1999/xhtml"),
			A("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"),
			A("xsi:schemaLocation", "http://www.w3.org/MarkUp/SCHEMA/xhtml11.xsd"),
			A("xml:lang", "en"),
		)
	default:
		return NewAttributes()
	}
}

// IsXHTML reports whether void elements must be self-closed.
func (d Doctype) IsXHTML() bool {
	return d == XHTML1_0 || d == XHTML1_1
}

// Page is the root of a document: a doctype, the <head> content and the
// <body> content.
//
// Page is not a Node and cannot be nested inside other content. Its body
// supports the same Add and With methods as Element.
type Page struct {
	doctype Doctype
	attrs   *Attributes
	head    []Node
	body    *Element
}

// NewPage creates an empty HTML5 page.
func NewPage() *Page {
	return NewPageWithDoctype(HTML5)
}

// NewPageWithDoctype creates an empty page of the given version.
func NewPageWithDoctype(d Doctype) *Page {
	return &Page{
		doctype: d,
		attrs:   NewAttributes(),
		body:    newElement(KindContainer, "body", nil),
	}
}

// Doctype returns the page's HTML version.
func (p *Page) Doctype() Doctype { return p.doctype }

// SetDoctype changes the page's HTML version.
func (p *Page) SetDoctype(d Doctype) { p.doctype = d }

// WithDoctype changes the page's HTML version and returns the page.
func (p *Page) WithDoctype(d Doctype) *Page {
	p.SetDoctype(d)
	return p
}

// Attributes returns the caller-set attributes of the <html> element.
// The doctype's own root attributes are merged in at render time.
func (p *Page) Attributes() *Attributes { return p.attrs }

// BodyAttributes returns the attributes of the <body> element.
func (p *Page) BodyAttributes() *Attributes { return p.body.attrs }

// Head returns a copy of the head nodes.
func (p *Page) Head() []Node {
	out := make([]Node, len(p.head))
	copy(out, p.head)
	return out
}

// Body returns a copy of the body's child nodes.
func (p *Page) Body() []Node { return p.body.Children() }

// String renders the page.
func (p *Page) String() string {
	return NewRenderer(RendererConfig{XHTML: p.doctype.IsXHTML()}).RenderPage(p)
}

// WriteTo renders the page into w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	return NewRenderer(RendererConfig{XHTML: p.doctype.IsXHTML()}).WritePage(w, p)
}

// Root attributes

// AddAttributes sets attributes on the <html> element.
func (p *Page) AddAttributes(attrs ...Attr) { p.attrs.Add(attrs...) }

// WithAttributes sets attributes on the <html> element and returns the page.
func (p *Page) WithAttributes(attrs ...Attr) *Page {
	p.AddAttributes(attrs...)
	return p
}

// WithLang sets the lang attribute of the <html> element.
func (p *Page) WithLang(lang string) *Page {
	p.attrs.Set("lang", lang)
	return p
}

// AddBodyAttributes sets attributes on the <body> element.
func (p *Page) AddBodyAttributes(attrs ...Attr) { p.body.AddAttributes(attrs...) }

// WithBodyAttributes sets attributes on the <body> element and returns the page.
func (p *Page) WithBodyAttributes(attrs ...Attr) *Page {
	p.AddBodyAttributes(attrs...)
	return p
}

// Head content

func (p *Page) appendHead(n Node) {
	p.head = append(p.head, n)
}

func headElement(tag string, attrs *Attributes) *Element {
	e := newElement(KindHead, tag, nil)
	e.attrs = attrs
	return e
}

// AddTitle appends a <title> to the head.
func (p *Page) AddTitle(title any) {
	e := headElement("title", NewAttributes())
	e.AddText(title)
	p.appendHead(e)
}

// WithTitle appends a <title> and returns the page.
func (p *Page) WithTitle(title any) *Page {
	p.AddTitle(title)
	return p
}

// AddMeta appends a <meta> element with the given attributes.
func (p *Page) AddMeta(attrs ...Attr) {
	p.appendHead(headElement("meta", NewAttributes(attrs...)))
}

// WithMeta appends a <meta> element and returns the page.
func (p *Page) WithMeta(attrs ...Attr) *Page {
	p.AddMeta(attrs...)
	return p
}

// AddHeadLink appends a <link href rel> element.
func (p *Page) AddHeadLink(href, rel any, attrs ...Attr) {
	a := NewAttributes(A("href", href), A("rel", rel)).Add(attrs...)
	p.appendHead(headElement("link", a))
}

// WithHeadLink appends a <link> element and returns the page.
func (p *Page) WithHeadLink(href, rel any, attrs ...Attr) *Page {
	p.AddHeadLink(href, rel, attrs...)
	return p
}

// AddStylesheet appends <link href rel="stylesheet">.
func (p *Page) AddStylesheet(href any, attrs ...Attr) {
	p.AddHeadLink(href, "stylesheet", attrs...)
}

// WithStylesheet appends a stylesheet link and returns the page.
func (p *Page) WithStylesheet(href any, attrs ...Attr) *Page {
	p.AddStylesheet(href, attrs...)
	return p
}

// AddStyle appends a <style> element. The CSS is not escaped.
func (p *Page) AddStyle(css any, attrs ...Attr) {
	e := headElement("style", NewAttributes(attrs...))
	e.AddRaw(css)
	p.appendHead(e)
}

// WithStyle appends a <style> element and returns the page.
func (p *Page) WithStyle(css any, attrs ...Attr) *Page {
	p.AddStyle(css, attrs...)
	return p
}

// AddScriptLink appends a <script src> element.
func (p *Page) AddScriptLink(src any, attrs ...Attr) {
	a := NewAttributes(A("src", src)).Add(attrs...)
	p.appendHead(headElement("script", a))
}

// WithScriptLink appends a <script src> element and returns the page.
func (p *Page) WithScriptLink(src any, attrs ...Attr) *Page {
	p.AddScriptLink(src, attrs...)
	return p
}

// AddScriptLiteral appends an inline <script>. The code is not escaped.
func (p *Page) AddScriptLiteral(code any) {
	e := headElement("script", NewAttributes())
	e.AddRaw(code)
	p.appendHead(e)
}

// WithScriptLiteral appends an inline <script> and returns the page.
func (p *Page) WithScriptLiteral(code any) *Page {
	p.AddScriptLiteral(code)
	return p
}

// AddHeadRaw appends unescaped markup to the head.
func (p *Page) AddHeadRaw(content any) {
	p.appendHead(NewRaw(content))
}

// WithHeadRaw appends unescaped markup to the head and returns the page.
func (p *Page) WithHeadRaw(content any) *Page {
	p.AddHeadRaw(content)
	return p
}

// Body content

// AddChild appends a node to the body.
func (p *Page) AddChild(n Node) { p.body.AddChild(n) }

// WithChild appends a node to the body and returns the page.
func (p *Page) WithChild(n Node) *Page {
	p.AddChild(n)
	return p
}

// AddHTML appends any Renderable to the body.
func (p *Page) AddHTML(r Renderable) { p.body.AddHTML(r) }

// WithHTML appends any Renderable to the body and returns the page.
func (p *Page) WithHTML(r Renderable) *Page {
	p.AddHTML(r)
	return p
}

// AddText appends escaped text to the body.
func (p *Page) AddText(text any) { p.body.AddText(text) }

// WithText appends escaped text to the body and returns the page.
func (p *Page) WithText(text any) *Page {
	p.AddText(text)
	return p
}

// AddRaw appends unescaped markup to the body.
func (p *Page) AddRaw(content any) { p.body.AddRaw(content) }

// WithRaw appends unescaped markup to the body and returns the page.
func (p *Page) WithRaw(content any) *Page {
	p.AddRaw(content)
	return p
}

// AddHeading appends an <hN> element to the body.
func (p *Page) AddHeading(level int, content any, attrs ...Attr) {
	p.body.AddHeading(level, content, attrs...)
}

// WithHeading appends an <hN> element to the body and returns the page.
func (p *Page) WithHeading(level int, content any, attrs ...Attr) *Page {
	p.AddHeading(level, content, attrs...)
	return p
}

// AddParagraph appends a <p> element to the body.
func (p *Page) AddParagraph(content any, attrs ...Attr) {
	p.body.AddParagraph(content, attrs...)
}

// WithParagraph appends a <p> element to the body and returns the page.
func (p *Page) WithParagraph(content any, attrs ...Attr) *Page {
	p.AddParagraph(content, attrs...)
	return p
}

// AddPreformatted appends a <pre> element to the body.
func (p *Page) AddPreformatted(content any, attrs ...Attr) {
	p.body.AddPreformatted(content, attrs...)
}

// WithPreformatted appends a <pre> element to the body and returns the page.
func (p *Page) WithPreformatted(content any, attrs ...Attr) *Page {
	p.AddPreformatted(content, attrs...)
	return p
}

// AddLink appends an <a> element to the body.
func (p *Page) AddLink(href, content any, attrs ...Attr) {
	p.body.AddLink(href, content, attrs...)
}

// WithLink appends an <a> element to the body and returns the page.
func (p *Page) WithLink(href, content any, attrs ...Attr) *Page {
	p.AddLink(href, content, attrs...)
	return p
}

// AddImage appends an <img> element to the body.
func (p *Page) AddImage(src any, attrs ...Attr) { p.body.AddImage(src, attrs...) }

// WithImage appends an <img> element to the body and returns the page.
func (p *Page) WithImage(src any, attrs ...Attr) *Page {
	p.AddImage(src, attrs...)
	return p
}

// AddList appends a list to the body.
func (p *Page) AddList(ordered bool, items any, attrs ...Attr) {
	p.body.AddList(ordered, items, attrs...)
}

// WithList appends a list to the body and returns the page.
func (p *Page) WithList(ordered bool, items any, attrs ...Attr) *Page {
	p.AddList(ordered, items, attrs...)
	return p
}

// AddTable appends a table built from rows to the body.
func (p *Page) AddTable(rows any, attrs ...Attr) { p.body.AddTable(rows, attrs...) }

// WithTable appends a table built from rows to the body and returns the page.
func (p *Page) WithTable(rows any, attrs ...Attr) *Page {
	p.AddTable(rows, attrs...)
	return p
}

// AddContainer appends a container holding content to the body.
func (p *Page) AddContainer(kind ContainerKind, content any, attrs ...Attr) {
	p.body.AddContainer(kind, content, attrs...)
}

// WithContainer appends a container to the body and returns the page.
func (p *Page) WithContainer(kind ContainerKind, content any, attrs ...Attr) *Page {
	p.AddContainer(kind, content, attrs...)
	return p
}
