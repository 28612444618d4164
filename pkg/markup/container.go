package markup

// appendChild is the single mutation primitive behind every Add and With
// method. nil nodes are dropped. A node that is already part of a tree, or
// that would make the tree cyclic, is copied first.
func (e *Element) appendChild(n Node) {
	if n == nil || isNilPointer(n) {
		return
	}
	e.children = append(e.children, adopt(e, n))
}

// appendContent converts content with toNodes and appends the result.
func (e *Element) appendContent(content any) {
	for _, n := range toNodes(content) {
		e.appendChild(n)
	}
}

// AddChild appends a node.
func (e *Element) AddChild(n Node) {
	e.appendChild(n)
}

// WithChild appends a node and returns the element.
func (e *Element) WithChild(n Node) *Element {
	e.AddChild(n)
	return e
}

// AddHTML appends any Renderable. Values that are not nodes of this
// package are rendered opaquely through their own RenderHTML.
func (e *Element) AddHTML(r Renderable) {
	e.appendContent(r)
}

// WithHTML appends any Renderable and returns the element.
func (e *Element) WithHTML(r Renderable) *Element {
	e.AddHTML(r)
	return e
}

// AddText appends an escaped text node.
func (e *Element) AddText(text any) {
	e.appendChild(NewText(text))
}

// WithText appends an escaped text node and returns the element.
func (e *Element) WithText(text any) *Element {
	e.AddText(text)
	return e
}

// AddRaw appends markup that is emitted without escaping.
func (e *Element) AddRaw(content any) {
	e.appendChild(NewRaw(content))
}

// WithRaw appends unescaped markup and returns the element.
func (e *Element) WithRaw(content any) *Element {
	e.AddRaw(content)
	return e
}

// AddHeading appends an <hN> element.
func (e *Element) AddHeading(level int, content any, attrs ...Attr) {
	e.appendChild(NewHeading(level, content, attrs...))
}

// WithHeading appends an <hN> element and returns the element.
func (e *Element) WithHeading(level int, content any, attrs ...Attr) *Element {
	e.AddHeading(level, content, attrs...)
	return e
}

// AddParagraph appends a <p> element.
func (e *Element) AddParagraph(content any, attrs ...Attr) {
	e.appendChild(NewParagraph(content, attrs...))
}

// WithParagraph appends a <p> element and returns the element.
func (e *Element) WithParagraph(content any, attrs ...Attr) *Element {
	e.AddParagraph(content, attrs...)
	return e
}

// AddPreformatted appends a <pre> element.
func (e *Element) AddPreformatted(content any, attrs ...Attr) {
	e.appendChild(NewPreformatted(content, attrs...))
}

// WithPreformatted appends a <pre> element and returns the element.
func (e *Element) WithPreformatted(content any, attrs ...Attr) *Element {
	e.AddPreformatted(content, attrs...)
	return e
}

// AddLink appends an <a> element.
func (e *Element) AddLink(href, content any, attrs ...Attr) {
	e.appendChild(NewLink(href, content, attrs...))
}

// WithLink appends an <a> element and returns the element.
func (e *Element) WithLink(href, content any, attrs ...Attr) *Element {
	e.AddLink(href, content, attrs...)
	return e
}

// AddImage appends an <img> element.
func (e *Element) AddImage(src any, attrs ...Attr) {
	e.appendChild(NewImage(src, attrs...))
}

// WithImage appends an <img> element and returns the element.
func (e *Element) WithImage(src any, attrs ...Attr) *Element {
	e.AddImage(src, attrs...)
	return e
}

// AddList appends an <ol> or <ul> with one <li> per entry of items.
// items may be a slice or array of any content, or a single value.
func (e *Element) AddList(ordered bool, items any, attrs ...Attr) {
	e.appendChild(ListOf(ordered, items, attrs...))
}

// WithList appends a list and returns the element.
func (e *Element) WithList(ordered bool, items any, attrs ...Attr) *Element {
	e.AddList(ordered, items, attrs...)
	return e
}

// AddTable appends a table whose body holds one row per entry of rows.
// See TableFromRows for the accepted shapes.
func (e *Element) AddTable(rows any, attrs ...Attr) {
	e.appendChild(TableFromRows(rows).WithAttributes(attrs...))
}

// WithTable appends a table built from rows and returns the element.
func (e *Element) WithTable(rows any, attrs ...Attr) *Element {
	e.AddTable(rows, attrs...)
	return e
}

// AddContainer appends a container of the given kind holding content.
func (e *Element) AddContainer(kind ContainerKind, content any, attrs ...Attr) {
	c := NewContainer(kind, attrs...)
	c.appendContent(content)
	e.appendChild(c)
}

// WithContainer appends a container and returns the element.
func (e *Element) WithContainer(kind ContainerKind, content any, attrs ...Attr) *Element {
	e.AddContainer(kind, content, attrs...)
	return e
}

// AddAttributes sets the given attributes, overwriting existing names.
func (e *Element) AddAttributes(attrs ...Attr) {
	e.attrs.Add(attrs...)
}

// WithAttributes sets the given attributes and returns the element.
func (e *Element) WithAttributes(attrs ...Attr) *Element {
	e.AddAttributes(attrs...)
	return e
}

// MergeAttributes merges other into the element's attributes. Values from
// other win.
func (e *Element) MergeAttributes(other *Attributes) {
	e.attrs = e.attrs.Merge(other)
}

// WithMergedAttributes merges other into the element's attributes and
// returns the element.
func (e *Element) WithMergedAttributes(other *Attributes) *Element {
	e.MergeAttributes(other)
	return e
}
