package markup

import "strings"

// specialChars are the bytes Escape replaces.
const specialChars = `&<>"`

// Escape converts text for safe inclusion in element content and
// attribute values.
//
// It replaces &, <, > and " with their entity forms in a single pass, so an
// ampersand introduced by a replacement is never escaped again. Input that
// is already escaped is escaped a second time: Escape("&lt;") returns
// "&amp;lt;".
func Escape(s string) string {
	if !strings.ContainsAny(s, specialChars) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteByte(c)
		}
	}

	return buf.String()
}
