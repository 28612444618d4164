package markup

import (
	"errors"
	"net"
	"testing"
)

type named struct{ name string }

func (n named) String() string { return "named:" + n.name }

func TestStringify(t *testing.T) {
	var nilStringer *net.IPAddr

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"bytes", []byte("raw"), "raw"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(1) << 40, "1099511627776"},
		{"uint8", uint8(255), "255"},
		{"float", 1.5, "1.5"},
		{"float whole", 2.0, "2"},
		{"float32", float32(0.25), "0.25"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"stringer", named{"x"}, "named:x"},
		{"ip", net.IPv4(127, 0, 0, 1), "127.0.0.1"},
		{"error", errors.New("boom"), "boom"},
		{"nil stringer pointer", nilStringer, ""},
		{"struct fallback", struct{ A int }{3}, "{3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stringify(tt.input)
			if got != tt.expected {
				t.Errorf("Stringify(%#v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSpread(t *testing.T) {
	if got := spread(nil); got != nil {
		t.Errorf("spread(nil) = %v, want nil", got)
	}
	if got := spread("abc"); len(got) != 1 {
		t.Errorf("spread(string) should be a single value, got %v", got)
	}
	if got := spread([]byte("abc")); len(got) != 1 {
		t.Errorf("spread([]byte) should be a single value, got %v", got)
	}
	if got := spread([]int{1, 2, 3}); len(got) != 3 {
		t.Errorf("spread([]int) len = %d, want 3", len(got))
	}
	if got := spread([2]string{"a", "b"}); len(got) != 2 {
		t.Errorf("spread(array) len = %d, want 2", len(got))
	}
	if got := spread(7); len(got) != 1 || got[0] != 7 {
		t.Errorf("spread(7) = %v, want [7]", got)
	}
}

func TestToNodes(t *testing.T) {
	var nilElement *Element

	tests := []struct {
		name  string
		input any
		kinds []Kind
	}{
		{"nil", nil, nil},
		{"typed nil node", nilElement, nil},
		{"string", "x", []Kind{KindText}},
		{"number", 3, []Kind{KindText}},
		{"node", NewParagraph("p"), []Kind{KindParagraph}},
		{"renderable", rawSpan("s"), []Kind{KindCustom}},
		{"node slice", []Node{NewText("a"), NewRaw("<b>")}, []Kind{KindText, KindRaw}},
		{"element slice", []*Element{NewParagraph("a"), NewParagraph("b")}, []Kind{KindParagraph, KindParagraph}},
		{"mixed slice", []any{"a", NewHeading(1, "h"), 2}, []Kind{KindText, KindHeading, KindText}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := toNodes(tt.input)
			if len(nodes) != len(tt.kinds) {
				t.Fatalf("toNodes(%v) len = %d, want %d", tt.input, len(nodes), len(tt.kinds))
			}
			for i, n := range nodes {
				if n.Kind() != tt.kinds[i] {
					t.Errorf("node %d kind = %s, want %s", i, n.Kind(), tt.kinds[i])
				}
			}
		})
	}
}
