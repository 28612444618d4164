package markup

// parentLink records the node a structured node was appended to.
type parentLink struct {
	parent owner
}

func (l *parentLink) treeLink() *parentLink { return l }

// owner is implemented by the nodes that hold children: Element, List,
// Table and TableRow.
type owner interface {
	Node
	treeLink() *parentLink
}

// adopt prepares child for insertion under parent and returns the node to
// store.
//
// A tree never shares a node or contains a cycle. A child that already has
// a parent, or that is parent itself or one of its ancestors, is replaced by
// a deep copy of its current state. A Custom wrapping a node of this package
// is unwrapped first. Text and Raw are immutable and stored as given.
func adopt[T Node](parent owner, child T) T {
	var n Node = child
	if c, ok := n.(*Custom); ok {
		if inner, ok := c.r.(owner); ok && !isNilPointer(inner) {
			if t, ok := Node(adopt[owner](parent, inner)).(T); ok {
				return t
			}
		}
		return child
	}

	o, ok := n.(owner)
	if !ok {
		return child
	}
	if o.treeLink().parent != nil || isAncestor(o, parent) {
		o = cloneNode(o)
	}
	o.treeLink().parent = parent
	return o.(T)
}

// isAncestor reports whether n is of or one of its ancestors.
func isAncestor(n, of owner) bool {
	for p := of; p != nil; p = p.treeLink().parent {
		if p == n {
			return true
		}
	}
	return false
}

// cloneNode returns a detached deep copy of n.
func cloneNode(n owner) owner {
	switch v := n.(type) {
	case *Element:
		return v.clone()
	case *List:
		return v.clone()
	case *Table:
		return v.clone()
	case *TableRow:
		return v.clone()
	}
	return n
}

func (e *Element) clone() *Element {
	out := &Element{kind: e.kind, tag: e.tag, level: e.level, attrs: e.attrs.Clone()}
	for _, c := range e.children {
		if o, ok := c.(owner); ok {
			c = cloneNode(o)
		}
		out.appendChild(c)
	}
	return out
}

func (l *List) clone() *List {
	out := &List{ordered: l.ordered, attrs: l.attrs.Clone()}
	for _, item := range l.items {
		out.appendItem(item.clone())
	}
	return out
}

func (r *TableRow) clone() *TableRow {
	out := &TableRow{attrs: r.attrs.Clone()}
	for _, cell := range r.cells {
		out.AddTableCell(cell.clone())
	}
	return out
}

func (t *Table) clone() *Table {
	out := &Table{attrs: t.attrs.Clone()}
	if t.caption != nil {
		out.caption = adopt[*Element](out, t.caption.clone())
	}
	for _, g := range []struct{ from, to *rowGroup }{
		{&t.head, &out.head},
		{&t.body, &out.body},
		{&t.foot, &out.foot},
	} {
		g.to.attrs = g.from.attrs.Clone()
		for _, row := range g.from.rows {
			g.to.add(out, row.clone())
		}
	}
	return out
}
