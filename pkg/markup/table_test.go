package markup

import "testing"

func TestTableWithHeaderRow(t *testing.T) {
	table := TableFromRows([][]string{{"a", "b"}, {"c", "d"}}).
		WithHeaderRow([]string{"H1", "H2"})

	want := "<table>" +
		"<thead><tr><th>H1</th><th>H2</th></tr></thead>" +
		"<tbody><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></tbody>" +
		"</table>"

	if got := table.RenderHTML(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTableRendering(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		want  string
	}{
		{
			name:  "empty",
			table: NewTable(),
			want:  "<table></table>",
		},
		{
			name:  "empty rows source",
			table: TableFromRows([][]int{}),
			want:  "<table></table>",
		},
		{
			name:  "nil rows source",
			table: TableFromRows(nil),
			want:  "<table></table>",
		},
		{
			name:  "numbers",
			table: TableFromRows([][]int{{1, 2, 3}, {4, 5, 6}}),
			want: "<table><tbody>" +
				"<tr><td>1</td><td>2</td><td>3</td></tr>" +
				"<tr><td>4</td><td>5</td><td>6</td></tr>" +
				"</tbody></table>",
		},
		{
			name:  "arrays",
			table: TableFromRows([2][2]string{{"a", "b"}, {"c", "d"}}),
			want:  "<table><tbody><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></tbody></table>",
		},
		{
			name:  "head only",
			table: NewTable().WithHeaderRow("A", "B"),
			want:  "<table><thead><tr><th>A</th><th>B</th></tr></thead></table>",
		},
		{
			name:  "foot only",
			table: NewTable().WithFooterRow("total", 10),
			want:  "<table><tfoot><tr><td>total</td><td>10</td></tr></tfoot></table>",
		},
		{
			name: "caption and all groups",
			table: NewTable().
				WithCaption("Results").
				WithHeaderRow("k", "v").
				WithBodyRow("a", 1).
				WithFooterRow("sum", 1),
			want: "<table><caption>Results</caption>" +
				"<thead><tr><th>k</th><th>v</th></tr></thead>" +
				"<tbody><tr><td>a</td><td>1</td></tr></tbody>" +
				"<tfoot><tr><td>sum</td><td>1</td></tr></tfoot>" +
				"</table>",
		},
		{
			name: "group attributes",
			table: NewTable().
				WithAttributes(A("id", "t")).
				WithHeadAttributes(A("class", "h")).
				WithBodyAttributes(A("class", "b")).
				WithFootAttributes(A("class", "f")),
			want: `<table id="t"><thead class="h"></thead><tbody class="b"></tbody><tfoot class="f"></tfoot></table>`,
		},
		{
			name:  "escaped cells",
			table: TableFromRows([][]string{{"<b>", "a&b"}}),
			want:  "<table><tbody><tr><td>&lt;b&gt;</td><td>a&amp;b</td></tr></tbody></table>",
		},
		{
			name:  "nil cell keeps its column",
			table: NewTable().WithBodyRow("a", nil, "c"),
			want:  "<table><tbody><tr><td>a</td><td></td><td>c</td></tr></tbody></table>",
		},
		{
			name:  "node cells",
			table: TableFromRows([][]Node{{NewParagraph("p"), NewRaw("<i>r</i>")}}),
			want:  "<table><tbody><tr><td><p>p</p></td><td><i>r</i></td></tr></tbody></table>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.RenderHTML(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTablePerRowAndCellAttributes(t *testing.T) {
	table := TableFromRows([][]int{{1, 2}, {3, 4}})
	table.BodyRow(0).AddAttributes(A("id", "first-row"))
	table.BodyRow(1).Cell(1).AddAttributes(A("class", "hot"))

	want := "<table><tbody>" +
		`<tr id="first-row"><td>1</td><td>2</td></tr>` +
		`<tr><td>3</td><td class="hot">4</td></tr>` +
		"</tbody></table>"

	if got := table.RenderHTML(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if table.BodyRow(2) != nil || table.HeaderRow(0) != nil || table.FooterRow(0) != nil {
		t.Error("out of range rows should be nil")
	}
	if table.BodyRow(0).Cell(9) != nil {
		t.Error("out of range cell should be nil")
	}
	if table.BodyRows() != 2 || table.HeaderRows() != 0 || table.FooterRows() != 0 {
		t.Error("unexpected row counts")
	}
}

func TestCustomRows(t *testing.T) {
	row := NewTableRow(A("id", "my-row")).
		WithTableCell(NewTableCell(HeaderCell).WithRaw("Header")).
		WithCell(1).
		WithHeaderCell("h2", A("scope", "col")).
		WithTableCell(NewParagraph("wrapped"))

	if got, want := row.RenderHTML(), `<tr id="my-row"><th>Header</th><td>1</td><th scope="col">h2</th><td><p>wrapped</p></td></tr>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	table := NewTable().
		WithCustomHeaderRow(NewTableRow().WithHeaderCell("h")).
		WithCustomBodyRow(row).
		WithCustomFooterRow(NewTableRow().WithCell("f"))

	want := "<table><thead><tr><th>h</th></tr></thead>" +
		`<tbody><tr id="my-row"><th>Header</th><td>1</td><th scope="col">h2</th><td><p>wrapped</p></td></tr></tbody>` +
		"<tfoot><tr><td>f</td></tr></tfoot></table>"
	if got := table.RenderHTML(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTableCellIsAContainer(t *testing.T) {
	cell := NewTableCell(HeaderCell).
		WithAttributes(A("id", "header-cell"), A("class", "headers")).
		WithParagraph("Here's a paragraph!")

	if got, want := cell.RenderHTML(), `<th id="header-cell" class="headers"><p>Here's a paragraph!</p></th>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNestedTableInContainer(t *testing.T) {
	inner := TableFromRows([][]int{{1, 2}, {3, 4}})
	table := TableFromRows([][]Node{
		{NewContainer(Div).WithParagraph("col_one"), NewContainer(Article).WithParagraph("col_two")},
		{NewContainer(Div), NewContainer(Div).WithChild(inner)},
	})

	want := "<table><tbody>" +
		"<tr><td><div><p>col_one</p></div></td><td><article><p>col_two</p></article></td></tr>" +
		"<tr><td><div></div></td><td><div><table><tbody>" +
		"<tr><td>1</td><td>2</td></tr><tr><td>3</td><td>4</td></tr>" +
		"</tbody></table></div></td></tr>" +
		"</tbody></table>"

	if got := table.RenderHTML(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCaptionReplaced(t *testing.T) {
	table := NewTable().WithCaption("one").WithCaption("two", A("class", "c"))
	if got, want := table.RenderHTML(), `<table><caption class="c">two</caption></table>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if table.Caption() == nil || table.Caption().Kind() != KindCaption {
		t.Error("Caption() should return the caption element")
	}
}
