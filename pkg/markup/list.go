package markup

// List is an ordered (<ol>) or unordered (<ul>) list of <li> items.
type List struct {
	parentLink
	ordered bool
	attrs   *Attributes
	items   []*Element
}

// NewList creates an empty list.
func NewList(ordered bool, attrs ...Attr) *List {
	return &List{ordered: ordered, attrs: NewAttributes(attrs...)}
}

// ListOf creates a list with one item per entry of items.
// Each entry is converted like any other content: nodes are kept, slices
// are flattened into the item, other values become text.
func ListOf(ordered bool, items any, attrs ...Attr) *List {
	l := NewList(ordered, attrs...)
	for _, item := range spread(items) {
		l.AddItem(item)
	}
	return l
}

// Kind implements Node.
func (l *List) Kind() Kind { return KindList }

// Ordered reports whether the list renders as <ol>.
func (l *List) Ordered() bool { return l.ordered }

// Tag returns "ol" or "ul".
func (l *List) Tag() string {
	if l.ordered {
		return "ol"
	}
	return "ul"
}

// Attributes returns the list's attribute set.
func (l *List) Attributes() *Attributes { return l.attrs }

// Items returns a copy of the item list.
func (l *List) Items() []*Element {
	out := make([]*Element, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the i-th item, or nil if out of range.
func (l *List) Item(i int) *Element {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// appendItem is the list's mutation primitive. Elements that are not list
// items are wrapped in one.
func (l *List) appendItem(item *Element) {
	if item == nil {
		return
	}
	if item.kind != KindListItem {
		item = NewListItem(item)
	}
	l.items = append(l.items, adopt(l, item))
}

// AddItem appends an <li> holding content.
func (l *List) AddItem(content any, attrs ...Attr) {
	l.appendItem(NewListItem(content, attrs...))
}

// WithItem appends an <li> holding content and returns the list.
func (l *List) WithItem(content any, attrs ...Attr) *List {
	l.AddItem(content, attrs...)
	return l
}

// AddListItem appends a prebuilt item.
func (l *List) AddListItem(item *Element) {
	l.appendItem(item)
}

// WithListItem appends a prebuilt item and returns the list.
func (l *List) WithListItem(item *Element) *List {
	l.AddListItem(item)
	return l
}

// AddAttributes sets the given attributes on the list.
func (l *List) AddAttributes(attrs ...Attr) {
	l.attrs.Add(attrs...)
}

// WithAttributes sets the given attributes and returns the list.
func (l *List) WithAttributes(attrs ...Attr) *List {
	l.AddAttributes(attrs...)
	return l
}

// RenderHTML implements Renderable.
func (l *List) RenderHTML() string { return Render(l) }

func (l *List) node() {}
