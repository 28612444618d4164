package markup

import (
	"bytes"
	"io"
)

// RendererConfig configures the renderer.
type RendererConfig struct {
	// XHTML closes void elements as <img ... /> instead of <img ...>.
	// Page.String sets it from the page's doctype.
	XHTML bool
}

// Renderer converts node trees into markup.
//
// Rendering is read-only and holds no state between calls, so one Renderer
// may be shared by goroutines rendering distinct trees. Output is compact:
// no whitespace is inserted between tags.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

var defaultRenderer = NewRenderer(RendererConfig{})

// Render renders a node (or any Renderable) with the default configuration.
func Render(node Renderable) string {
	return defaultRenderer.RenderToString(node)
}

// RenderToString renders a node tree to a string.
func (r *Renderer) RenderToString(node Renderable) string {
	var buf bytes.Buffer
	r.renderNode(&buf, node)
	return buf.String()
}

// RenderToWriter renders a node tree into w. The tree is rendered in full
// before anything is written, so only the writer can fail.
func (r *Renderer) RenderToWriter(w io.Writer, node Renderable) error {
	var buf bytes.Buffer
	r.renderNode(&buf, node)
	_, err := buf.WriteTo(w)
	return err
}

// RenderPage renders a complete document.
func (r *Renderer) RenderPage(p *Page) string {
	var buf bytes.Buffer
	r.renderPage(&buf, p)
	return buf.String()
}

// WritePage renders a complete document into w.
func (r *Renderer) WritePage(w io.Writer, p *Page) (int64, error) {
	var buf bytes.Buffer
	r.renderPage(&buf, p)
	return buf.WriteTo(w)
}

// renderNode dispatches rendering based on node type.
func (r *Renderer) renderNode(buf *bytes.Buffer, node Renderable) {
	if node == nil || isNilPointer(node) {
		return
	}

	switch n := node.(type) {
	case *Text:
		buf.WriteString(Escape(n.content))
	case *Raw:
		buf.WriteString(n.content)
	case *Element:
		r.renderElement(buf, n)
	case *List:
		r.renderList(buf, n)
	case *Table:
		r.renderTable(buf, n)
	case *TableRow:
		r.renderRow(buf, n)
	case *Custom:
		if inner, ok := n.r.(Node); ok {
			r.renderNode(buf, inner)
			return
		}
		buf.WriteString(n.RenderHTML())
	default:
		// Caller-defined Renderable passed straight to Render.
		buf.WriteString(n.RenderHTML())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(buf *bytes.Buffer, e *Element) {
	r.openTag(buf, e.tag, e.attrs)

	if isVoidElement(e.tag) {
		r.closeVoid(buf)
		return
	}
	buf.WriteByte('>')

	for _, child := range e.children {
		r.renderNode(buf, child)
	}

	r.closeTag(buf, e.tag)
}

func (r *Renderer) renderList(buf *bytes.Buffer, l *List) {
	tag := l.Tag()
	r.openTag(buf, tag, l.attrs)
	buf.WriteByte('>')
	for _, item := range l.items {
		r.renderElement(buf, item)
	}
	r.closeTag(buf, tag)
}

func (r *Renderer) renderTable(buf *bytes.Buffer, t *Table) {
	r.openTag(buf, "table", t.attrs)
	buf.WriteByte('>')

	if t.caption != nil {
		r.renderElement(buf, t.caption)
	}
	r.renderGroup(buf, "thead", &t.head)
	r.renderGroup(buf, "tbody", &t.body)
	r.renderGroup(buf, "tfoot", &t.foot)

	r.closeTag(buf, "table")
}

// renderGroup renders a thead, tbody or tfoot. Empty groups are skipped.
func (r *Renderer) renderGroup(buf *bytes.Buffer, tag string, g *rowGroup) {
	if g.empty() {
		return
	}
	r.openTag(buf, tag, g.attrs)
	buf.WriteByte('>')
	for _, row := range g.rows {
		r.renderRow(buf, row)
	}
	r.closeTag(buf, tag)
}

func (r *Renderer) renderRow(buf *bytes.Buffer, row *TableRow) {
	r.openTag(buf, "tr", row.attrs)
	buf.WriteByte('>')
	for _, cell := range row.cells {
		r.renderElement(buf, cell)
	}
	r.closeTag(buf, "tr")
}

// renderPage renders the doctype line, then <html> wrapping <head> and <body>.
func (r *Renderer) renderPage(buf *bytes.Buffer, p *Page) {
	if p == nil {
		return
	}

	buf.WriteString(p.doctype.Declaration())

	r.openTag(buf, "html", p.doctype.RootAttributes().Merge(p.attrs))
	buf.WriteByte('>')

	buf.WriteString("<head>")
	for _, n := range p.head {
		r.renderNode(buf, n)
	}
	buf.WriteString("</head>")

	r.renderElement(buf, p.body)

	r.closeTag(buf, "html")
}

func (r *Renderer) openTag(buf *bytes.Buffer, tag string, attrs *Attributes) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	attrs.writeTo(buf)
}

func (r *Renderer) closeVoid(buf *bytes.Buffer) {
	if r.config.XHTML {
		buf.WriteString(" />")
		return
	}
	buf.WriteByte('>')
}

func (r *Renderer) closeTag(buf *bytes.Buffer, tag string) {
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}
