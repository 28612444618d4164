package docspec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmlgen/pkg/markup"
)

// Attrs is an attribute mapping that keeps the order it was written in.
type Attrs []markup.Attr

// UnmarshalYAML decodes a mapping of attribute names to scalar values.
func (a *Attrs) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", n.Line)
	}
	out := make(Attrs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must have a scalar value", v.Line, k.Value)
		}
		out = append(out, markup.A(k.Value, v.Value))
	}
	*a = out
	return nil
}

// Block is one entry of a body or container: exactly one type key
// (heading, paragraph, ...) plus optional attrs.
//
// Blocks are decoded lazily by the Builder so that errors can point at the
// block's position in the file.
type Block struct {
	node *yaml.Node
}

// UnmarshalYAML keeps the block's node for the Builder.
func (b *Block) UnmarshalYAML(n *yaml.Node) error {
	b.node = n
	return nil
}

// Type returns the block's type key, or "" if the block is malformed.
func (b Block) Type() string {
	typ, _, _, _ := b.split()
	return typ
}

// Line returns the line the block starts on.
func (b Block) Line() int {
	if b.node == nil {
		return 0
	}
	return b.node.Line
}

// split separates the type key and its value from the attrs.
// count is the number of non-attrs keys found.
func (b Block) split() (typ string, value *yaml.Node, attrs *yaml.Node, count int) {
	if b.node == nil || b.node.Kind != yaml.MappingNode {
		return "", nil, nil, 0
	}
	for i := 0; i+1 < len(b.node.Content); i += 2 {
		k, v := b.node.Content[i], b.node.Content[i+1]
		if k.Value == "attrs" {
			attrs = v
			continue
		}
		count++
		if count == 1 {
			typ, value = k.Value, v
		}
	}
	return typ, value, attrs, count
}

type headingBlock struct {
	Level int    `yaml:"level"`
	Text  string `yaml:"text"`
}

type imageBlock struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

type linkBlock struct {
	Href string `yaml:"href"`
	Text string `yaml:"text"`
}

type listBlock struct {
	Ordered bool        `yaml:"ordered"`
	Items   []yaml.Node `yaml:"items"`
}

type containerBlock struct {
	Kind     string  `yaml:"kind"`
	Children []Block `yaml:"children"`
}

type tableBlock struct {
	Caption   string     `yaml:"caption"`
	Header    []string   `yaml:"header"`
	Rows      [][]string `yaml:"rows"`
	Footer    []string   `yaml:"footer"`
	HeadAttrs Attrs      `yaml:"headAttrs"`
	BodyAttrs Attrs      `yaml:"bodyAttrs"`
	FootAttrs Attrs      `yaml:"footAttrs"`
}

// blockTypes lists the recognised type keys, in the order they are documented.
var blockTypes = []string{
	"heading", "paragraph", "text", "raw", "preformatted", "image",
	"link", "list", "container", "table", "markdown",
}
