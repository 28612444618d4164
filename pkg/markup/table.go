package markup

// TableRow is a <tr> holding header and data cells.
type TableRow struct {
	parentLink
	attrs *Attributes
	cells []*Element
}

// NewTableRow creates an empty row.
func NewTableRow(attrs ...Attr) *TableRow {
	return &TableRow{attrs: NewAttributes(attrs...)}
}

// RowOf creates a row with one cell of the given kind per entry of cells.
func RowOf(kind CellKind, cells any) *TableRow {
	r := NewTableRow()
	for _, c := range spread(cells) {
		r.appendCell(kind, c)
	}
	return r
}

// Kind implements Node.
func (r *TableRow) Kind() Kind { return KindTableRow }

// Attributes returns the row's attribute set.
func (r *TableRow) Attributes() *Attributes { return r.attrs }

// Cells returns a copy of the cell list.
func (r *TableRow) Cells() []*Element {
	out := make([]*Element, len(r.cells))
	copy(out, r.cells)
	return out
}

// Cell returns the i-th cell, or nil if out of range.
func (r *TableRow) Cell(i int) *Element {
	if i < 0 || i >= len(r.cells) {
		return nil
	}
	return r.cells[i]
}

// Len returns the number of cells.
func (r *TableRow) Len() int { return len(r.cells) }

func (r *TableRow) appendCell(kind CellKind, content any, attrs ...Attr) {
	cell := NewTableCell(kind, attrs...)
	cell.appendContent(content)
	r.cells = append(r.cells, adopt(r, cell))
}

// AddCell appends a <td> holding content.
func (r *TableRow) AddCell(content any, attrs ...Attr) {
	r.appendCell(DataCell, content, attrs...)
}

// WithCell appends a <td> and returns the row.
func (r *TableRow) WithCell(content any, attrs ...Attr) *TableRow {
	r.AddCell(content, attrs...)
	return r
}

// AddHeaderCell appends a <th> holding content.
func (r *TableRow) AddHeaderCell(content any, attrs ...Attr) {
	r.appendCell(HeaderCell, content, attrs...)
}

// WithHeaderCell appends a <th> and returns the row.
func (r *TableRow) WithHeaderCell(content any, attrs ...Attr) *TableRow {
	r.AddHeaderCell(content, attrs...)
	return r
}

// AddTableCell appends a prebuilt cell. Elements that are not table cells
// are wrapped in a <td>.
func (r *TableRow) AddTableCell(cell *Element) {
	if cell == nil {
		return
	}
	if cell.kind != KindTableCell {
		cell = NewTableCell(DataCell).WithChild(cell)
	}
	r.cells = append(r.cells, adopt(r, cell))
}

// WithTableCell appends a prebuilt cell and returns the row.
func (r *TableRow) WithTableCell(cell *Element) *TableRow {
	r.AddTableCell(cell)
	return r
}

// AddAttributes sets the given attributes on the row.
func (r *TableRow) AddAttributes(attrs ...Attr) {
	r.attrs.Add(attrs...)
}

// WithAttributes sets the given attributes and returns the row.
func (r *TableRow) WithAttributes(attrs ...Attr) *TableRow {
	r.AddAttributes(attrs...)
	return r
}

// RenderHTML implements Renderable.
func (r *TableRow) RenderHTML() string { return Render(r) }

func (r *TableRow) node() {}

// rowGroup is one of thead, tbody and tfoot.
type rowGroup struct {
	attrs *Attributes
	rows  []*TableRow
}

// empty reports whether the group renders nothing.
func (g *rowGroup) empty() bool {
	return len(g.rows) == 0 && g.attrs.Len() == 0
}

func (g *rowGroup) row(i int) *TableRow {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

func (g *rowGroup) add(t *Table, row *TableRow) {
	if row != nil {
		g.rows = append(g.rows, adopt(t, row))
	}
}

// Table is a <table> with an optional caption and header, body and footer
// row groups.
//
// Groups render in the order caption, thead, tbody, tfoot. A group with no
// rows and no attributes is omitted, so an empty table renders as
// <table></table>.
type Table struct {
	parentLink
	attrs   *Attributes
	caption *Element
	head    rowGroup
	body    rowGroup
	foot    rowGroup
}

// NewTable creates an empty table.
func NewTable(attrs ...Attr) *Table {
	return &Table{
		attrs: NewAttributes(attrs...),
		head:  rowGroup{attrs: NewAttributes()},
		body:  rowGroup{attrs: NewAttributes()},
		foot:  rowGroup{attrs: NewAttributes()},
	}
}

// TableFromRows creates a table with one body row per entry of rows. Each
// row is a slice or array of cell contents; a non-slice row becomes a
// single cell.
//
//	markup.TableFromRows([][]int{{1, 2}, {3, 4}})
func TableFromRows(rows any) *Table {
	t := NewTable()
	for _, row := range spread(rows) {
		t.AddBodyRow(row)
	}
	return t
}

// Kind implements Node.
func (t *Table) Kind() Kind { return KindTable }

// Attributes returns the attribute set of the <table> element.
func (t *Table) Attributes() *Attributes { return t.attrs }

// Caption returns the caption, or nil.
func (t *Table) Caption() *Element { return t.caption }

// HeaderRow returns the i-th header row, or nil if out of range.
func (t *Table) HeaderRow(i int) *TableRow { return t.head.row(i) }

// BodyRow returns the i-th body row, or nil if out of range.
func (t *Table) BodyRow(i int) *TableRow { return t.body.row(i) }

// FooterRow returns the i-th footer row, or nil if out of range.
func (t *Table) FooterRow(i int) *TableRow { return t.foot.row(i) }

// HeaderRows returns the number of header rows.
func (t *Table) HeaderRows() int { return len(t.head.rows) }

// BodyRows returns the number of body rows.
func (t *Table) BodyRows() int { return len(t.body.rows) }

// FooterRows returns the number of footer rows.
func (t *Table) FooterRows() int { return len(t.foot.rows) }

// SetCaption sets the caption, replacing any previous one.
func (t *Table) SetCaption(content any, attrs ...Attr) {
	t.caption = adopt(t, NewCaption(content, attrs...))
}

// WithCaption sets the caption and returns the table.
func (t *Table) WithCaption(content any, attrs ...Attr) *Table {
	t.SetCaption(content, attrs...)
	return t
}

// AddHeaderRow appends a row of <th> cells to the thead. Arguments that
// are slices are flattened, so both AddHeaderRow("a", "b") and
// AddHeaderRow([]string{"a", "b"}) produce two cells.
func (t *Table) AddHeaderRow(cells ...any) {
	t.head.add(t, RowOf(HeaderCell, flattenArgs(cells)))
}

// WithHeaderRow appends a header row and returns the table.
func (t *Table) WithHeaderRow(cells ...any) *Table {
	t.AddHeaderRow(cells...)
	return t
}

// AddBodyRow appends a row of <td> cells to the tbody.
func (t *Table) AddBodyRow(cells ...any) {
	t.body.add(t, RowOf(DataCell, flattenArgs(cells)))
}

// WithBodyRow appends a body row and returns the table.
func (t *Table) WithBodyRow(cells ...any) *Table {
	t.AddBodyRow(cells...)
	return t
}

// AddFooterRow appends a row of <td> cells to the tfoot.
func (t *Table) AddFooterRow(cells ...any) {
	t.foot.add(t, RowOf(DataCell, flattenArgs(cells)))
}

// WithFooterRow appends a footer row and returns the table.
func (t *Table) WithFooterRow(cells ...any) *Table {
	t.AddFooterRow(cells...)
	return t
}

// AddCustomHeaderRow appends a prebuilt row to the thead.
func (t *Table) AddCustomHeaderRow(row *TableRow) { t.head.add(t, row) }

// WithCustomHeaderRow appends a prebuilt row to the thead and returns the table.
func (t *Table) WithCustomHeaderRow(row *TableRow) *Table {
	t.AddCustomHeaderRow(row)
	return t
}

// AddCustomBodyRow appends a prebuilt row to the tbody.
func (t *Table) AddCustomBodyRow(row *TableRow) { t.body.add(t, row) }

// WithCustomBodyRow appends a prebuilt row to the tbody and returns the table.
func (t *Table) WithCustomBodyRow(row *TableRow) *Table {
	t.AddCustomBodyRow(row)
	return t
}

// AddCustomFooterRow appends a prebuilt row to the tfoot.
func (t *Table) AddCustomFooterRow(row *TableRow) { t.foot.add(t, row) }

// WithCustomFooterRow appends a prebuilt row to the tfoot and returns the table.
func (t *Table) WithCustomFooterRow(row *TableRow) *Table {
	t.AddCustomFooterRow(row)
	return t
}

// AddAttributes sets attributes on the <table> element.
func (t *Table) AddAttributes(attrs ...Attr) { t.attrs.Add(attrs...) }

// WithAttributes sets attributes on the <table> element and returns the table.
func (t *Table) WithAttributes(attrs ...Attr) *Table {
	t.AddAttributes(attrs...)
	return t
}

// AddHeadAttributes sets attributes on the <thead> element.
func (t *Table) AddHeadAttributes(attrs ...Attr) { t.head.attrs.Add(attrs...) }

// WithHeadAttributes sets attributes on the <thead> element and returns the table.
func (t *Table) WithHeadAttributes(attrs ...Attr) *Table {
	t.AddHeadAttributes(attrs...)
	return t
}

// AddBodyAttributes sets attributes on the <tbody> element.
func (t *Table) AddBodyAttributes(attrs ...Attr) { t.body.attrs.Add(attrs...) }

// WithBodyAttributes sets attributes on the <tbody> element and returns the table.
func (t *Table) WithBodyAttributes(attrs ...Attr) *Table {
	t.AddBodyAttributes(attrs...)
	return t
}

// AddFootAttributes sets attributes on the <tfoot> element.
func (t *Table) AddFootAttributes(attrs ...Attr) { t.foot.attrs.Add(attrs...) }

// WithFootAttributes sets attributes on the <tfoot> element and returns the table.
func (t *Table) WithFootAttributes(attrs ...Attr) *Table {
	t.AddFootAttributes(attrs...)
	return t
}

// RenderHTML implements Renderable.
func (t *Table) RenderHTML() string { return Render(t) }

func (t *Table) node() {}

// flattenArgs spreads each variadic argument one level. nil arguments are
// kept so they still occupy a cell.
func flattenArgs(args []any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		if a == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, spread(a)...)
	}
	return out
}
