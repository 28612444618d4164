package markup

import "strconv"

// ContainerKind selects the tag of a container element.
type ContainerKind uint8

const (
	Div ContainerKind = iota
	Article
	Main
	Section
	Header
	Footer
	Nav
	Aside
	Figure
	Figcaption
	Address
	Blockquote
)

// String returns the tag name of the container kind.
func (k ContainerKind) String() string {
	switch k {
	case Div:
		return "div"
	case Article:
		return "article"
	case Main:
		return "main"
	case Section:
		return "section"
	case Header:
		return "header"
	case Footer:
		return "footer"
	case Nav:
		return "nav"
	case Aside:
		return "aside"
	case Figure:
		return "figure"
	case Figcaption:
		return "figcaption"
	case Address:
		return "address"
	case Blockquote:
		return "blockquote"
	default:
		return "div"
	}
}

// ParseContainerKind returns the container kind for a tag name.
func ParseContainerKind(tag string) (ContainerKind, bool) {
	for k := Div; k <= Blockquote; k++ {
		if k.String() == tag {
			return k, true
		}
	}
	return Div, false
}

// CellKind selects between header and data table cells.
type CellKind uint8

const (
	DataCell   CellKind = iota // <td>
	HeaderCell                 // <th>
)

// String returns the tag name of the cell kind.
func (k CellKind) String() string {
	if k == HeaderCell {
		return "th"
	}
	return "td"
}

// Element is a tag with attributes and child nodes.
//
// Headings, paragraphs, preformatted blocks, links, images, list items,
// containers, table cells and captions are all Elements; Kind tells them
// apart. Content is appended through the Add and With methods.
type Element struct {
	parentLink
	kind     Kind
	tag      string
	level    int
	attrs    *Attributes
	children []Node
}

func newElement(kind Kind, tag string, attrs []Attr) *Element {
	return &Element{
		kind:  kind,
		tag:   tag,
		attrs: NewAttributes(attrs...),
	}
}

// NewHeading creates an <hN> element. The level is not validated.
func NewHeading(level int, content any, attrs ...Attr) *Element {
	e := newElement(KindHeading, "h"+strconv.Itoa(level), attrs)
	e.level = level
	e.appendContent(content)
	return e
}

// NewParagraph creates a <p> element.
func NewParagraph(content any, attrs ...Attr) *Element {
	e := newElement(KindParagraph, "p", attrs)
	e.appendContent(content)
	return e
}

// NewPreformatted creates a <pre> element.
func NewPreformatted(content any, attrs ...Attr) *Element {
	e := newElement(KindPreformatted, "pre", attrs)
	e.appendContent(content)
	return e
}

// NewLink creates an <a> element. href is always the first attribute.
func NewLink(href, content any, attrs ...Attr) *Element {
	e := newElement(KindLink, "a", nil)
	e.attrs.Set("href", href).Add(attrs...)
	e.appendContent(content)
	return e
}

// NewImage creates an <img> element. src is always the first attribute.
func NewImage(src any, attrs ...Attr) *Element {
	e := newElement(KindImage, "img", nil)
	e.attrs.Set("src", src).Add(attrs...)
	return e
}

// NewContainer creates an empty container element of the given kind.
func NewContainer(kind ContainerKind, attrs ...Attr) *Element {
	return newElement(KindContainer, kind.String(), attrs)
}

// NewListItem creates an <li> element holding content.
func NewListItem(content any, attrs ...Attr) *Element {
	e := newElement(KindListItem, "li", attrs)
	e.appendContent(content)
	return e
}

// NewTableCell creates an empty <th> or <td> element.
func NewTableCell(kind CellKind, attrs ...Attr) *Element {
	return newElement(KindTableCell, kind.String(), attrs)
}

// NewCaption creates a <caption> element holding content.
func NewCaption(content any, attrs ...Attr) *Element {
	e := newElement(KindCaption, "caption", attrs)
	e.appendContent(content)
	return e
}

// Kind implements Node.
func (e *Element) Kind() Kind { return e.kind }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Level returns the heading level, or 0 for other kinds.
func (e *Element) Level() int { return e.level }

// Attributes returns the element's attribute set.
func (e *Element) Attributes() *Attributes { return e.attrs }

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// IsVoid reports whether the element renders without a closing tag.
func (e *Element) IsVoid() bool { return isVoidElement(e.tag) }

// RenderHTML implements Renderable.
func (e *Element) RenderHTML() string { return Render(e) }

func (e *Element) node() {}
