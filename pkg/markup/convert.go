package markup

import (
	"fmt"
	"reflect"
	"strconv"
)

// Stringify converts a display value to the string used in markup.
//
// Strings, byte slices, fmt.Stringer and error values are used as-is.
// Booleans and numbers use their shortest decimal form. nil becomes the
// empty string. Anything else falls back to fmt.Sprint.
//
// Runes are int32 and therefore render as numbers; pass string(r) for
// the character.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return v.String()
	case error:
		if isNilPointer(v) {
			return ""
		}
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// isNilPointer reports whether v holds a typed nil pointer.
func isNilPointer(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// spread expands one level of slice or array into its elements.
// Byte slices and strings are treated as single values.
func spread(value any) []any {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []any:
		return v
	case string, []byte:
		return []any{v}
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}

// toNodes converts content into child nodes.
//
// Nodes are kept, other Renderables are wrapped in Custom, slices are
// flattened and everything else becomes a Text node.
func toNodes(content any) []Node {
	if content == nil {
		return nil
	}
	switch v := content.(type) {
	case Node:
		if isNilPointer(v) {
			return nil
		}
		return []Node{v}
	case []Node:
		out := make([]Node, 0, len(v))
		for _, n := range v {
			out = append(out, toNodes(n)...)
		}
		return out
	case Renderable:
		if isNilPointer(v) {
			return nil
		}
		return []Node{NewCustom(v)}
	case string, []byte:
		return []Node{NewText(v)}
	}

	rv := reflect.ValueOf(content)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var out []Node
		for _, item := range spread(content) {
			out = append(out, toNodes(item)...)
		}
		return out
	}
	return []Node{NewText(content)}
}
