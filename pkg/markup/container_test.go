package markup

import (
	"fmt"
	"testing"
)

func TestContainerContent(t *testing.T) {
	kinds := []ContainerKind{Div, Article, Main, Section, Header, Footer, Nav, Aside, Figure, Figcaption, Address, Blockquote}

	content := `<h1 id="main-header">header</h1>` +
		`<img src="myimage.png" alt="test image">` +
		`<a href="example.org">Home</a>` +
		`<p class="red-text">Sample Text</p>` +
		`<pre class="code">Text</pre>`

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			c := NewContainer(kind).
				WithHeading(1, "header", A("id", "main-header")).
				WithImage("myimage.png", A("alt", "test image")).
				WithLink("example.org", "Home").
				WithParagraph("Sample Text", A("class", "red-text")).
				WithPreformatted("Text", A("class", "code"))

			want := fmt.Sprintf("<%s>%s</%s>", kind, content, kind)
			if got := c.RenderHTML(); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestAddAndWithProduceSameTree(t *testing.T) {
	fluent := NewContainer(Main).
		WithAttributes(A("id", "m")).
		WithHeading(2, "Title").
		WithParagraph("p1").
		WithText("t & t").
		WithRaw("<hr>").
		WithLink("/x", "x").
		WithImage("/i.png").
		WithList(true, []string{"a", "b"}).
		WithTable([][]int{{1, 2}}).
		WithContainer(Section, "inner").
		WithPreformatted("  pre  ").
		WithChild(NewText("child")).
		WithHTML(rawSpan("s"))

	imperative := NewContainer(Main)
	imperative.AddAttributes(A("id", "m"))
	imperative.AddHeading(2, "Title")
	imperative.AddParagraph("p1")
	imperative.AddText("t & t")
	imperative.AddRaw("<hr>")
	imperative.AddLink("/x", "x")
	imperative.AddImage("/i.png")
	imperative.AddList(true, []string{"a", "b"})
	imperative.AddTable([][]int{{1, 2}})
	imperative.AddContainer(Section, "inner")
	imperative.AddPreformatted("  pre  ")
	imperative.AddChild(NewText("child"))
	imperative.AddHTML(rawSpan("s"))

	got, want := imperative.RenderHTML(), fluent.RenderHTML()
	if got != want {
		t.Errorf("in-place and fluent builds differ:\n got %q\nwant %q", got, want)
	}
	if len(imperative.Children()) != len(fluent.Children()) {
		t.Errorf("child count differs: %d vs %d", len(imperative.Children()), len(fluent.Children()))
	}
}

func TestNesting(t *testing.T) {
	c := NewContainer(Main).
		WithParagraph("paragraph").
		WithList(true, []Node{
			NewContainer(Div).WithParagraph(1),
			NewContainer(Div).WithParagraph(string('2')),
			NewContainer(Div).WithParagraph("3"),
		}).
		WithParagraph("done")

	want := "<main><p>paragraph</p><ol>" +
		"<li><div><p>1</p></div></li>" +
		"<li><div><p>2</p></div></li>" +
		"<li><div><p>3</p></div></li>" +
		"</ol><p>done</p></main>"

	if got := c.RenderHTML(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDisplayValuesAsContent(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"int paragraph", NewParagraph(42), "<p>42</p>"},
		{"float heading", NewHeading(3, 2.5), "<h3>2.5</h3>"},
		{"bool text", NewText(true), "true"},
		{"stringer link", NewLink(named{"href"}, named{"text"}), `<a href="named:href">named:text</a>`},
		{"numeric image src", NewImage(7), `<img src="7">`},
		{"nil content", NewParagraph(nil), "<p></p>"},
		{"escaped content", NewParagraph("1 < 2"), "<p>1 &lt; 2</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.RenderHTML(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadingLevelNotValidated(t *testing.T) {
	for _, level := range []int{0, 7, 9} {
		h := NewHeading(level, "x")
		want := fmt.Sprintf("<h%d>x</h%d>", level, level)
		if got := h.RenderHTML(); got != want {
			t.Errorf("level %d: got %q, want %q", level, got, want)
		}
		if h.Level() != level {
			t.Errorf("Level() = %d, want %d", h.Level(), level)
		}
	}
}

func TestAttributesOnElements(t *testing.T) {
	link := NewLink("/a", "a", A("class", "links"), A("href", "/b"))
	if got, want := link.RenderHTML(), `<a href="/b" class="links">a</a>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	p := NewParagraph("x").
		WithAttributes(A("id", "p1"), A("class", "a")).
		WithMergedAttributes(NewAttributes(A("class", "b"), A("title", "t")))
	if got, want := p.RenderHTML(), `<p id="p1" class="b" title="t">x</p>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNilChildrenDropped(t *testing.T) {
	var nilTable *Table
	c := NewContainer(Div)
	c.AddChild(nil)
	c.AddChild(nilTable)
	c.AddHTML(nil)

	if len(c.Children()) != 0 {
		t.Errorf("nil children should be dropped, got %d", len(c.Children()))
	}
	if got := c.RenderHTML(); got != "<div></div>" {
		t.Errorf("got %q", got)
	}
}

func TestChildrenIsACopy(t *testing.T) {
	c := NewContainer(Div).WithText("a")
	children := c.Children()
	children[0] = NewText("b")
	if got := c.RenderHTML(); got != "<div>a</div>" {
		t.Errorf("mutating Children() result changed the tree: %q", got)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		list *List
		want string
	}{
		{
			name: "unordered",
			list: ListOf(false, []string{"a", "b"}),
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "ordered with attrs",
			list: ListOf(true, []int{1}, A("start", 3)),
			want: `<ol start="3"><li>1</li></ol>`,
		},
		{
			name: "empty",
			list: NewList(false),
			want: "<ul></ul>",
		},
		{
			name: "item attributes",
			list: NewList(false).WithItem("x", A("class", "first")).WithItem(NewLink("/", "home")),
			want: `<ul><li class="first">x</li><li><a href="/">home</a></li></ul>`,
		},
		{
			name: "prebuilt item and wrapped element",
			list: NewList(true).WithListItem(NewListItem("li")).WithListItem(NewParagraph("p")),
			want: "<ol><li>li</li><li><p>p</p></li></ol>",
		},
		{
			name: "single value",
			list: ListOf(false, "only"),
			want: "<ul><li>only</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.RenderHTML(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListItemAccess(t *testing.T) {
	l := ListOf(false, []string{"a", "b"})
	l.Item(1).AddAttributes(A("class", "last"))

	if got, want := l.RenderHTML(), `<ul><li>a</li><li class="last">b</li></ul>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if l.Item(5) != nil || l.Item(-1) != nil {
		t.Error("out of range Item should be nil")
	}
	if l.Len() != 2 || l.Tag() != "ul" || l.Ordered() {
		t.Error("unexpected list metadata")
	}
}

func TestParseContainerKind(t *testing.T) {
	k, ok := ParseContainerKind("article")
	if !ok || k != Article {
		t.Errorf("ParseContainerKind(article) = %v, %v", k, ok)
	}
	if _, ok := ParseContainerKind("span"); ok {
		t.Error("span is not a container kind")
	}
}
