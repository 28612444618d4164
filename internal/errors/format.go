package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// style is an ANSI SGR sequence applied to terminal output.
type style string

const (
	styleReset    style = "\033[0m"
	styleError    style = "\033[1;31m"
	styleCode     style = "\033[1;37m"
	styleText     style = "\033[37m"
	styleLocation style = "\033[36m"
	styleMuted    style = "\033[90m"
	styleLink     style = "\033[34m"
)

var colorEnabled = true

// DisableColors turns off ANSI styling, for --no-color and non-terminals.
func DisableColors() { colorEnabled = false }

// EnableColors turns ANSI styling back on.
func EnableColors() { colorEnabled = true }

func (s style) paint(text string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return string(s) + text + string(styleReset)
}

// detailWidth is the column at which details are wrapped.
const detailWidth = 70

// Format renders the error as a multi-line terminal report: header, source
// excerpt, detail, cause, hint and documentation link.
func (e *Error) Format() string {
	var b strings.Builder
	b.WriteByte('\n')

	label := "ERROR: "
	if e.Code != "" {
		label = "ERROR "
	}
	b.WriteString(styleError.paint(label))
	if e.Code != "" {
		b.WriteString(styleCode.paint(e.Code + ": "))
	}
	b.WriteString(styleText.paint(e.Message))
	b.WriteString("\n\n")

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", styleLocation.paint(e.Location.String()))
		e.writeExcerpt(&b)
	}

	if lines := wrapText(e.Detail, detailWidth); len(lines) > 0 {
		for _, line := range lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteByte('\n')
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", styleMuted.paint("Cause: "), e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", styleLocation.paint("Hint: "), e.Suggestion)
	}
	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s%s\n", styleMuted.paint("Learn more: "), styleLink.paint(e.DocURL))
	}
	return b.String()
}

// writeExcerpt writes the source lines around the location with the failing
// line marked and, when the column is known, a caret under it.
func (e *Error) writeExcerpt(b *strings.Builder) {
	if len(e.Context) == 0 {
		return
	}
	first := e.contextStart
	if first == 0 {
		first = e.Location.Line - len(e.Context)/2
	}
	gutter := styleMuted.paint(" │ ")

	for i, line := range e.Context {
		n := first + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, gutter, line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", styleError.paint("→ "), n, gutter, line)
		if col := e.Location.Column; col > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", styleMuted.paint("│ "), strings.Repeat(" ", col-1), styleError.paint("^"))
		}
	}
	b.WriteByte('\n')
}

// FormatCompact returns the error on one line as
// file:line:col: code: message: cause.
func (e *Error) FormatCompact() string {
	parts := make([]string, 0, 4)
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	if e.Wrapped != nil {
		parts = append(parts, e.Wrapped.Error())
	}
	return strings.Join(parts, ": ")
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Cause      string        `json:"cause,omitempty"`
	DocURL     string        `json:"docUrl,omitempty"`
}

// FormatJSON returns the error as a JSON object for tooling.
func (e *Error) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if e.Location != nil {
		out.Location = &jsonLocation{File: e.Location.File, Line: e.Location.Line, Column: e.Location.Column}
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText splits text into lines of at most width columns, breaking on
// whitespace. A single word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// PrintError writes err to stderr, using Format for *Error values.
func PrintError(err error) {
	if e, ok := err.(*Error); ok {
		fmt.Fprint(os.Stderr, e.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n\n", styleError.paint("ERROR:"), err.Error())
}
