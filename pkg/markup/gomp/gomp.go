// Package gomp adapts between markup nodes and gomponents.
//
// Component embeds a gomponents tree in a markup document; Node and Page go
// the other way, so markup output can be placed inside gomponents views.
package gomp

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/vango-dev/htmlgen/pkg/markup"
)

// Component wraps a gomponents node so it can be added to any markup
// container. The node is rendered each time the document is; a node that
// fails to render contributes nothing.
func Component(n g.Node) *markup.Custom {
	return markup.NewCustom(component{n: n})
}

type component struct {
	n g.Node
}

func (c component) RenderHTML() string {
	if c.n == nil {
		return ""
	}
	var b strings.Builder
	if err := c.n.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// Node wraps a markup node (or any Renderable) as a gomponents node.
func Node(r markup.Renderable) g.Node {
	return NodeWith(markup.NewRenderer(markup.RendererConfig{}), r)
}

// NodeWith is like Node but renders with the given renderer.
func NodeWith(renderer *markup.Renderer, r markup.Renderable) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return renderer.RenderToWriter(w, r)
	})
}

// Page wraps a complete markup page as a gomponents node.
func Page(p *markup.Page) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		_, err := p.WriteTo(w)
		return err
	})
}

// Attrs converts an attribute set into gomponents attribute nodes, in order.
func Attrs(a *markup.Attributes) g.Group {
	group := make(g.Group, 0, a.Len())
	for k, v := range a.All() {
		group = append(group, g.Attr(k, v))
	}
	return group
}
