package gomp

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vango-dev/htmlgen/pkg/markup"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestComponentInsideMarkup(t *testing.T) {
	section := markup.NewContainer(markup.Section).
		WithHeading(2, "From gomponents").
		WithChild(Component(h.Div(h.Class("card"), g.Text("a<b"))))

	assert.Equal(t,
		`<section><h2>From gomponents</h2><div class="card">a&lt;b</div></section>`,
		markup.Render(section))
}

func TestComponentNil(t *testing.T) {
	assert.Empty(t, markup.Render(Component(nil)))
}

func TestComponentRenderError(t *testing.T) {
	failing := g.NodeFunc(func(w io.Writer) error {
		if _, err := io.WriteString(w, "<div>partial"); err != nil {
			return err
		}
		return errors.New("template failed")
	})

	div := markup.NewContainer(markup.Div).WithText("a").WithChild(Component(failing))
	assert.Equal(t, "<div>a</div>", markup.Render(div))
}

func TestNodeInsideGomponents(t *testing.T) {
	table := markup.TableFromRows([][]string{{"1", "2"}}).WithHeaderRow("a", "b")
	view := h.Main(h.ID("content"), Node(table))

	assert.Equal(t,
		`<main id="content"><table><thead><tr><th>a</th><th>b</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table></main>`,
		render(t, view))
}

func TestNodeWithXHTMLRenderer(t *testing.T) {
	r := markup.NewRenderer(markup.RendererConfig{XHTML: true})
	view := h.Div(NodeWith(r, markup.NewImage("a.png")))

	assert.Equal(t, `<div><img src="a.png" /></div>`, render(t, view))
}

func TestPage(t *testing.T) {
	page := markup.NewPage().WithTitle("T").WithParagraph("x")
	assert.Equal(t, page.String(), render(t, Page(page)))
}

func TestAttrs(t *testing.T) {
	attrs := markup.NewAttributes(markup.A("id", "main"), markup.A("data-x", 1))
	view := h.Div(Attrs(attrs), g.Text("y"))

	assert.Equal(t, `<div id="main" data-x="1">y</div>`, render(t, view))
	assert.Empty(t, Attrs(nil))
}

func TestRoundTrip(t *testing.T) {
	inner := markup.NewContainer(markup.Div).WithText("deep")
	outer := markup.NewContainer(markup.Article).
		WithChild(Component(h.Span(Node(inner))))

	assert.Equal(t, "<article><span><div>deep</div></span></article>", markup.Render(outer))
}
