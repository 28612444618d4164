package errors

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    "H001",
			wantMsg: "Config file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "document error",
			code:    "H021",
			wantMsg: "Unknown block type",
			wantCat: CategoryDocument,
		},
		{
			name:    "publish error",
			code:    "H061",
			wantMsg: "Upload failed",
			wantCat: CategoryPublish,
		},
		{
			name:    "unknown error code",
			code:    "H999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "index.yaml")
	if err.Message != `file "index.yaml" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "index.yaml" not found`)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestError_Error(t *testing.T) {
	err := New("H021")
	if got, want := err.Error(), "H021: Unknown block type"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &Error{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}

	// With cause
	err3 := New("H025").Wrap(fs.ErrNotExist)
	if got, want := err3.Error(), "H025: Document read failed: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_WithLocation(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "index.yaml")
	content := `title: Home
body:
  - heading: {level: 1, text: Hi}
  - paragraph: Welcome
  - headline: oops
  - paragraph: Bye
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("H021").WithLocation(tmpFile, 5, 5)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != tmpFile {
		t.Errorf("Location.File = %q, want %q", err.Location.File, tmpFile)
	}
	if err.Location.Line != 5 || err.Location.Column != 5 {
		t.Errorf("Location = %d:%d, want 5:5", err.Location.Line, err.Location.Column)
	}
	// Lines 3 to 6; the file ends before line 7.
	if len(err.Context) != 4 {
		t.Errorf("Context has %d lines, want 4", len(err.Context))
	}
}

func TestError_Builders(t *testing.T) {
	err := New("H022").
		WithDetail("custom detail").
		WithSuggestion("Use section").
		WithContext([]string{"a", "b"})

	if err.Detail != "custom detail" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "Use section" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
	if len(err.Context) != 2 {
		t.Errorf("Context = %v", err.Context)
	}

	err.WithDetailf("kind %q", "span")
	if err.Detail != `kind "span"` {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestError_Wrap(t *testing.T) {
	inner := New("H025")
	outer := New("H020").Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestError_Is(t *testing.T) {
	err := New("H024").WithDetail("image needs src")
	wrapped := New("H020").Wrap(err)

	if !stderrors.Is(wrapped, New("H024")) {
		t.Error("errors.Is should match on code through the chain")
	}
	if stderrors.Is(err, New("H025")) {
		t.Error("errors.Is should not match a different code")
	}

	var target *Error
	if !stderrors.As(wrapped, &target) || target.Code != "H020" {
		t.Errorf("errors.As = %v", target)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "H025") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	e := New("H001")
	if FromError(e, "H025") != e {
		t.Error("FromError should return an *Error as-is")
	}

	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, "H025")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
	if result.Code != "H025" {
		t.Errorf("Code = %q, want H025", result.Code)
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{
			name: "nil location",
			loc:  nil,
			want: "",
		},
		{
			name: "with column",
			loc:  &Location{File: "index.yaml", Line: 10, Column: 5},
			want: "index.yaml:10:5",
		},
		{
			name: "without column",
			loc:  &Location{File: "index.yaml", Line: 10, Column: 0},
			want: "index.yaml:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loc.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "index.yaml")
	content := `title: Home
body:
  - headline: oops
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("H021").
		WithLocation(tmpFile, 3, 5).
		WithSuggestion("Use heading").
		Wrap(stderrors.New("yaml: bad"))

	formatted := err.Format()

	for _, want := range []string{
		"H021",
		"Unknown block type",
		tmpFile,
		"→    3 │   - headline: oops",
		"Hint: Use heading",
		"Cause: yaml: bad",
		"Learn more: https://htmlgen.dev/docs/errors/H021",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format should contain %q, got:\n%s", want, formatted)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("H021").WithLocation("index.yaml", 10, 5)

	want := "index.yaml:10:5: H021: Unknown block type"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("H021").WithLocation("index.yaml", 10, 5).Wrap(stderrors.New("boom"))
	json := err.FormatJSON()

	for _, want := range []string{
		`"code":"H021"`,
		`"category":"document"`,
		`"message":"Unknown block type"`,
		`"location":{"file":"index.yaml","line":10,"column":5}`,
		`"cause":"boom"`,
	} {
		if !strings.Contains(json, want) {
			t.Errorf("JSON should contain %s, got %s", want, json)
		}
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Fatal("GetAllCodes() should return codes")
	}
	if codes[0] != "H001" {
		t.Errorf("codes should be sorted, first = %q", codes[0])
	}
	for _, code := range codes {
		tmpl, _ := GetTemplate(code)
		if tmpl.Category == "" || tmpl.Message == "" {
			t.Errorf("%s: template is incomplete: %+v", code, tmpl)
		}
		if !strings.HasSuffix(tmpl.DocURL, code) {
			t.Errorf("%s: DocURL = %q", code, tmpl.DocURL)
		}
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("H060")
	if !ok {
		t.Error("H060 should exist")
	}
	if template.Message != "Bucket not configured" {
		t.Error("Template message mismatch")
	}

	_, ok = GetTemplate("H999")
	if ok {
		t.Error("H999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("H999", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom test error",
		Detail:   "This is a test error",
		DocURL:   "https://test.dev/H999",
	})
	defer delete(registry, "H999")

	err := New("H999")
	if err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	got = wrapText("supercalifragilistic word", 10)
	if len(got) != 2 || got[0] != "supercalifragilistic" {
		t.Errorf("wrapText long word: got %v", got)
	}

	got = wrapText("", 10)
	if len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestStylePaint(t *testing.T) {
	EnableColors()
	defer EnableColors()

	if got := styleError.paint("test"); got != "\033[1;31mtest\033[0m" {
		t.Errorf("paint with colors = %q", got)
	}
	if got := styleError.paint(""); got != "" {
		t.Errorf("empty text should stay empty, got %q", got)
	}

	DisableColors()
	if got := styleError.paint("test"); got != "test" {
		t.Errorf("paint without colors = %q", got)
	}
}

func TestFormatWithoutLocation(t *testing.T) {
	DisableColors()
	defer EnableColors()

	formatted := Newf(CategoryCLI, "disk %s", "full").Format()
	if !strings.HasPrefix(formatted, "\nERROR: disk full\n\n") {
		t.Errorf("unexpected header: %q", formatted)
	}
}
