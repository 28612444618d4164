package markup

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText         Kind = iota // Escaped text
	KindRaw                      // Unescaped markup
	KindCustom                   // Caller-defined Renderable
	KindHeading                  // <h1> to <h6>
	KindParagraph                // <p>
	KindPreformatted             // <pre>
	KindImage                    // <img>
	KindLink                     // <a>
	KindList                     // <ol> or <ul>
	KindListItem                 // <li>
	KindContainer                // <div>, <article>, ...
	KindTable                    // <table>
	KindTableRow                 // <tr>
	KindTableCell                // <th> or <td>
	KindCaption                  // <caption>
	KindHead                     // <title>, <meta>, ... inside a page head
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindCustom:
		return "Custom"
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindPreformatted:
		return "Preformatted"
	case KindImage:
		return "Image"
	case KindLink:
		return "Link"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindContainer:
		return "Container"
	case KindTable:
		return "Table"
	case KindTableRow:
		return "TableRow"
	case KindTableCell:
		return "TableCell"
	case KindCaption:
		return "Caption"
	case KindHead:
		return "Head"
	default:
		return "Unknown"
	}
}

// Renderable is anything that renders itself to markup.
//
// Implement it to insert node types this package does not model. The
// returned markup is inserted verbatim, so the implementation is
// responsible for its own escaping.
type Renderable interface {
	RenderHTML() string
}

// Node is a node of the document tree.
//
// The set of Node implementations is closed; caller-defined content enters
// the tree through Custom.
type Node interface {
	Renderable
	Kind() Kind
	node()
}

// Text is a leaf holding text that is escaped on render.
type Text struct {
	content string
}

// NewText creates a text node from any display value.
func NewText(content any) *Text {
	return &Text{content: Stringify(content)}
}

// Content returns the unescaped text.
func (t *Text) Content() string { return t.content }

// Kind implements Node.
func (t *Text) Kind() Kind { return KindText }

// RenderHTML implements Renderable.
func (t *Text) RenderHTML() string { return Render(t) }

func (t *Text) node() {}

// Raw is a leaf holding markup that is emitted without escaping.
// Use with caution: raw content from untrusted sources allows injection.
type Raw struct {
	content string
}

// NewRaw creates a raw markup node.
func NewRaw(content any) *Raw {
	return &Raw{content: Stringify(content)}
}

// Content returns the raw markup.
func (r *Raw) Content() string { return r.content }

// Kind implements Node.
func (r *Raw) Kind() Kind { return KindRaw }

// RenderHTML implements Renderable.
func (r *Raw) RenderHTML() string { return r.content }

func (r *Raw) node() {}

// Custom wraps a caller-defined Renderable so it can live in the tree.
type Custom struct {
	r Renderable
}

// NewCustom wraps r. Values that already are nodes are not wrapped again
// by the builder methods; NewCustom itself always wraps.
func NewCustom(r Renderable) *Custom {
	return &Custom{r: r}
}

// Renderable returns the wrapped value.
func (c *Custom) Renderable() Renderable { return c.r }

// Kind implements Node.
func (c *Custom) Kind() Kind { return KindCustom }

// RenderHTML implements Renderable.
func (c *Custom) RenderHTML() string {
	if c.r == nil || isNilPointer(c.r) {
		return ""
	}
	return c.r.RenderHTML()
}

func (c *Custom) node() {}
