// Package markup builds HTML documents programmatically and renders them to
// compact markup strings.
//
// The package provides an in-memory document tree made of a closed set of
// node types (text, raw HTML, headings, paragraphs, links, images, lists,
// containers and tables) rooted at a Page. Trees are assembled eagerly
// through builder methods and rendered deterministically: the same tree
// always renders to the same bytes, and no whitespace is ever inserted
// between tags.
//
// # Core Types
//
// Node is the unit of content. Element covers every tag that holds other
// content (headings, paragraphs, containers, list items, table cells).
// List, Table and TableRow hold structured children. Text is escaped on
// render, Raw is emitted verbatim. Attributes is an ordered attribute set.
//
// # Building
//
// Every content-holding node exposes two method families over one append
// primitive: AddX mutates in place, WithX mutates and returns the receiver
// for chaining.
//
//	page := markup.NewPage().
//	    WithTitle("My Page").
//	    WithHeading(1, "Main Content:").
//	    WithContainer(markup.Article, []markup.Node{
//	        markup.NewHeading(2, "Hello, World"),
//	        markup.NewParagraph("This is a simple HTML demo"),
//	    })
//
//	html := page.String()
//
// Content arguments accept any display value (strings, numbers, booleans,
// fmt.Stringer) as well as nodes and slices of either.
//
// # Extending
//
// Any type implementing Renderable can be inserted with AddHTML. The
// renderer treats such values as opaque and concatenates their output.
// For one-off snippets, AddRaw inserts unescaped markup directly.
//
// # Escaping
//
// Text content and attribute values are escaped with Escape. Attribute
// names and Raw content are never escaped. Escape is not idempotent:
// escaping "&amp;" yields "&amp;amp;".
package markup
