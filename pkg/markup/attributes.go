package markup

import (
	"bytes"
	"iter"
	"sort"
)

// Attr is a single attribute name/value pair.
type Attr struct {
	Key   string
	Value string
}

// A creates an Attr from any display values.
func A(key, value any) Attr {
	return Attr{Key: Stringify(key), Value: Stringify(value)}
}

// IsEmpty returns true if the attribute has no name.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attributes is an ordered set of attributes.
//
// Names keep the position of their first insertion; setting an existing
// name replaces its value in place. Attributes with an empty name are
// ignored. The zero value is an empty set ready to use.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes creates an attribute set from the given pairs.
func NewAttributes(attrs ...Attr) *Attributes {
	a := &Attributes{}
	for _, attr := range attrs {
		a.set(attr.Key, attr.Value)
	}
	return a
}

// AttributesFromMap creates an attribute set from a map.
// Keys are sorted so the result does not depend on map iteration order.
func AttributesFromMap[K comparable, V any](m map[K]V) *Attributes {
	attrs := make([]Attr, 0, len(m))
	for k, v := range m {
		attrs = append(attrs, A(k, v))
	}
	sort.SliceStable(attrs, func(i, j int) bool {
		return attrs[i].Key < attrs[j].Key
	})
	return NewAttributes(attrs...)
}

// AttributesFromSeq creates an attribute set from a sequence of pairs,
// keeping the order in which the sequence yields them.
func AttributesFromSeq[K, V any](seq iter.Seq2[K, V]) *Attributes {
	a := &Attributes{}
	if seq == nil {
		return a
	}
	for k, v := range seq {
		a.set(Stringify(k), Stringify(v))
	}
	return a
}

func (a *Attributes) set(key, value string) {
	if key == "" {
		return
	}
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Set inserts or overwrites an attribute and returns the set.
func (a *Attributes) Set(key, value any) *Attributes {
	a.set(Stringify(key), Stringify(value))
	return a
}

// Add inserts or overwrites each of the given pairs.
func (a *Attributes) Add(attrs ...Attr) *Attributes {
	for _, attr := range attrs {
		a.set(attr.Key, attr.Value)
	}
	return a
}

// Get returns the value for key and whether it was present.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key is set.
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the attribute names in render order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// All iterates over the attributes in render order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set.
func (a *Attributes) Clone() *Attributes {
	out := &Attributes{}
	if a == nil {
		return out
	}
	for _, k := range a.keys {
		out.set(k, a.values[k])
	}
	return out
}

// Merge returns a new set holding the union of a and other.
// Values from other win; names new to a are appended in other's order.
func (a *Attributes) Merge(other *Attributes) *Attributes {
	out := a.Clone()
	if other == nil {
		return out
	}
	for _, k := range other.keys {
		out.set(k, other.values[k])
	}
	return out
}

// String renders the set as a sequence of ` name="value"` pairs.
func (a *Attributes) String() string {
	if a.Len() == 0 {
		return ""
	}
	var buf bytes.Buffer
	a.writeTo(&buf)
	return buf.String()
}

// writeTo renders the set into buf. Values are escaped, names are not.
func (a *Attributes) writeTo(buf *bytes.Buffer) {
	if a == nil {
		return
	}
	for _, k := range a.keys {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteString(`="`)
		buf.WriteString(Escape(a.values[k]))
		buf.WriteByte('"')
	}
}
