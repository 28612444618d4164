package docspec

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/markup"
	"github.com/vango-dev/htmlgen/pkg/markup/markdown"
)

// Builder turns documents into pages. The zero value is ready to use.
type Builder struct {
	// Doctype is used when a document does not declare one.
	Doctype markup.Doctype

	// Markdown converts markdown blocks. Nil uses markdown.DefaultOptions.
	Markdown *markdown.Converter
}

// Build builds the document with a zero Builder.
func (d *Document) Build() (*markup.Page, error) {
	var b Builder
	return b.Build(d)
}

// Build builds a page from the document.
func (b *Builder) Build(d *Document) (*markup.Page, error) {
	doctype := b.Doctype
	if d.Doctype != "" {
		dt, ok := markup.ParseDoctype(d.Doctype)
		if !ok {
			return nil, d.fail("H023", d.key("doctype"), "doctype %q is not supported", d.Doctype).
				WithSuggestion("Use one of: html5, html4, xhtml1.0, xhtml1.1")
		}
		doctype = dt
	}

	page := markup.NewPageWithDoctype(doctype)
	if d.Lang != "" {
		page.WithLang(d.Lang)
	}
	page.AddAttributes(d.Attrs...)
	page.AddBodyAttributes(d.BodyAttrs...)

	if d.Title != "" {
		page.AddTitle(d.Title)
	}
	for _, m := range d.Meta {
		page.AddMeta(m...)
	}
	for i, l := range d.Links {
		if l.Href == "" {
			return nil, d.fail("H024", d.key("links"), "link %d has no href", i+1)
		}
		rel := l.Rel
		if rel == "" {
			rel = "stylesheet"
		}
		page.AddHeadLink(l.Href, rel, l.Attrs...)
	}
	for _, css := range d.Styles {
		page.AddStyle(css)
	}
	for i, s := range d.Scripts {
		switch {
		case s.Src != "" && s.Inline != "":
			return nil, d.fail("H021", d.key("scripts"), "script %d has both src and inline", i+1)
		case s.Src != "":
			page.AddScriptLink(s.Src, s.Attrs...)
		case s.Inline != "":
			page.AddScriptLiteral(s.Inline)
		default:
			return nil, d.fail("H024", d.key("scripts"), "script %d needs src or inline", i+1)
		}
	}

	for _, blk := range d.Body {
		n, err := b.block(d, blk)
		if err != nil {
			return nil, err
		}
		page.AddChild(n)
	}
	return page, nil
}

func (b *Builder) block(d *Document, blk Block) (markup.Node, error) {
	if blk.node == nil || blk.node.Kind != yaml.MappingNode {
		return nil, d.fail("H021", blk.node, "a block must be a mapping with one type key").
			WithSuggestion("Write blocks as `- paragraph: text`")
	}
	typ, value, attrNode, count := blk.split()
	switch {
	case count == 0:
		return nil, d.fail("H021", blk.node, "block has no type key")
	case count > 1:
		return nil, d.fail("H021", blk.node, "block has %d type keys, exactly one is allowed", count)
	}

	var attrs Attrs
	if attrNode != nil {
		if err := attrNode.Decode(&attrs); err != nil {
			return nil, d.fail("H020", attrNode, "invalid attrs").Wrap(err)
		}
	}

	switch typ {
	case "heading":
		return b.heading(d, value, attrs)
	case "paragraph":
		text, err := d.scalar(typ, value)
		if err != nil {
			return nil, err
		}
		return markup.NewParagraph(text, attrs...), nil
	case "preformatted":
		text, err := d.scalar(typ, value)
		if err != nil {
			return nil, err
		}
		return markup.NewPreformatted(text, attrs...), nil
	case "text", "raw":
		if len(attrs) > 0 {
			return nil, d.fail("H021", attrNode, "%s blocks cannot have attrs", typ).
				WithSuggestion("Use a paragraph or wrap it in a container")
		}
		text, err := d.scalar(typ, value)
		if err != nil {
			return nil, err
		}
		if typ == "raw" {
			return markup.NewRaw(text), nil
		}
		return markup.NewText(text), nil
	case "image":
		return b.image(d, value, attrs)
	case "link":
		var l linkBlock
		if err := d.decode(value, &l); err != nil {
			return nil, err
		}
		if l.Href == "" {
			return nil, d.fail("H024", value, "link has no href")
		}
		text := l.Text
		if text == "" {
			text = l.Href
		}
		return markup.NewLink(l.Href, text, attrs...), nil
	case "list":
		return b.list(d, value, attrs)
	case "container":
		return b.container(d, value, attrs)
	case "table":
		return b.table(d, value, attrs)
	case "markdown":
		return b.markdown(d, value, attrs)
	}

	return nil, d.fail("H021", blk.node, "block type %q is not recognized", typ).
		WithSuggestion("Use one of: " + strings.Join(blockTypes, ", "))
}

func (b *Builder) heading(d *Document, value *yaml.Node, attrs Attrs) (markup.Node, error) {
	// Shorthand: `heading: Title` is a level 1 heading.
	if value.Kind == yaml.ScalarNode {
		return markup.NewHeading(1, value.Value, attrs...), nil
	}
	h := headingBlock{Level: 1}
	if err := d.decode(value, &h); err != nil {
		return nil, err
	}
	return markup.NewHeading(h.Level, h.Text, attrs...), nil
}

func (b *Builder) image(d *Document, value *yaml.Node, attrs Attrs) (markup.Node, error) {
	var img imageBlock
	if value.Kind == yaml.ScalarNode {
		img.Src = value.Value
	} else if err := d.decode(value, &img); err != nil {
		return nil, err
	}
	if img.Src == "" {
		return nil, d.fail("H024", value, "image has no src")
	}
	if img.Alt != "" {
		attrs = append(Attrs{markup.A("alt", img.Alt)}, attrs...)
	}
	return markup.NewImage(img.Src, attrs...), nil
}

func (b *Builder) list(d *Document, value *yaml.Node, attrs Attrs) (markup.Node, error) {
	var l listBlock
	if value.Kind == yaml.SequenceNode {
		// Shorthand: `list: [a, b]` is an unordered list.
		for _, item := range value.Content {
			l.Items = append(l.Items, *item)
		}
	} else if err := d.decode(value, &l); err != nil {
		return nil, err
	}

	list := markup.NewList(l.Ordered, attrs...)
	for i := range l.Items {
		item := &l.Items[i]
		switch item.Kind {
		case yaml.ScalarNode:
			list.AddItem(item.Value)
		case yaml.MappingNode:
			n, err := b.block(d, Block{node: item})
			if err != nil {
				return nil, err
			}
			list.AddItem(n)
		default:
			return nil, d.fail("H021", item, "list items must be text or a block")
		}
	}
	return list, nil
}

func (b *Builder) container(d *Document, value *yaml.Node, attrs Attrs) (markup.Node, error) {
	c := containerBlock{Kind: "div"}
	if err := d.decode(value, &c); err != nil {
		return nil, err
	}
	kind, ok := markup.ParseContainerKind(c.Kind)
	if !ok {
		return nil, d.fail("H022", value, "container kind %q is not supported", c.Kind)
	}

	el := markup.NewContainer(kind, attrs...)
	for _, child := range c.Children {
		n, err := b.block(d, child)
		if err != nil {
			return nil, err
		}
		el.AddChild(n)
	}
	return el, nil
}

func (b *Builder) table(d *Document, value *yaml.Node, attrs Attrs) (markup.Node, error) {
	var tb tableBlock
	if err := d.decode(value, &tb); err != nil {
		return nil, err
	}

	t := markup.NewTable(attrs...)
	if tb.Caption != "" {
		t.SetCaption(tb.Caption)
	}
	if tb.Header != nil {
		t.AddHeaderRow(tb.Header)
	}
	for _, row := range tb.Rows {
		t.AddBodyRow(row)
	}
	if tb.Footer != nil {
		t.AddFooterRow(tb.Footer)
	}
	t.AddHeadAttributes(tb.HeadAttrs...)
	t.AddBodyAttributes(tb.BodyAttrs...)
	t.AddFootAttributes(tb.FootAttrs...)
	return t, nil
}

func (b *Builder) markdown(d *Document, value *yaml.Node, attrs Attrs) (markup.Node, error) {
	source, err := d.scalar("markdown", value)
	if err != nil {
		return nil, err
	}

	var block *markdown.Block
	if b.Markdown != nil {
		block, err = b.Markdown.Convert(source)
	} else {
		block, err = markdown.Convert(source)
	}
	if err != nil {
		return nil, d.fail("H026", value, "markdown conversion failed").Wrap(err)
	}

	if len(attrs) == 0 {
		return block.Node(), nil
	}
	return markup.NewContainer(markup.Div, attrs...).WithHTML(block), nil
}

// scalar returns the text of a scalar value. A missing value is "".
func (d *Document) scalar(typ string, value *yaml.Node) (string, error) {
	if value.Kind != yaml.ScalarNode {
		return "", d.fail("H021", value, "%s expects text", typ)
	}
	if value.Tag == "!!null" {
		return "", nil
	}
	return value.Value, nil
}

func (d *Document) decode(value *yaml.Node, out any) error {
	if value.Kind != yaml.MappingNode {
		if value.Tag == "!!null" {
			return nil
		}
		return d.fail("H020", value, "expected a mapping")
	}
	if err := value.Decode(out); err != nil {
		return d.fail("H020", value, "invalid block").Wrap(err)
	}
	return nil
}

// key returns the value node of a top-level key, for error locations.
func (d *Document) key(name string) *yaml.Node {
	if len(d.root.Content) == 0 {
		return nil
	}
	m := d.root.Content[0]
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == name {
			return m.Content[i+1]
		}
	}
	return nil
}

// fail builds a coded error located at n.
func (d *Document) fail(code string, n *yaml.Node, format string, args ...any) *errors.Error {
	e := errors.New(code).WithDetailf(format, args...)
	if n != nil && d.name != "" {
		e.WithLocation(d.name, n.Line, n.Column)
	}
	return e
}
