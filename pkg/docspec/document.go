// Package docspec loads page descriptions written in YAML (or JSON) and
// builds them into markup pages.
//
// A description names the doctype, the head content and a list of body
// blocks:
//
//	doctype: html5
//	lang: en
//	title: My Page
//	meta:
//	  - {charset: utf-8}
//	links:
//	  - {href: style.css, rel: stylesheet}
//	body:
//	  - heading: {level: 1, text: "Main Content:"}
//	  - container:
//	      kind: article
//	      children:
//	        - heading: {level: 2, text: "Hello, World"}
//	        - paragraph: This is a simple HTML demo
//
// Each block has exactly one type key and an optional attrs mapping. Errors
// carry the file position of the offending block.
package docspec

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmlgen/internal/errors"
)

// Extensions lists the file extensions recognised as page descriptions.
var Extensions = []string{".yaml", ".yml", ".json"}

// Document is a parsed page description.
type Document struct {
	Doctype   string   `yaml:"doctype"`
	Lang      string   `yaml:"lang"`
	Title     string   `yaml:"title"`
	Attrs     Attrs    `yaml:"attrs"`
	BodyAttrs Attrs    `yaml:"bodyAttrs"`
	Meta      []Attrs  `yaml:"meta"`
	Links     []Link   `yaml:"links"`
	Styles    []string `yaml:"styles"`
	Scripts   []Script `yaml:"scripts"`
	Body      []Block  `yaml:"body"`

	// name is the file the document was read from, used in error locations.
	name string
	root yaml.Node
}

// Link is a <link> element in the head.
type Link struct {
	Href  string `yaml:"href"`
	Rel   string `yaml:"rel"`
	Attrs Attrs  `yaml:"attrs"`
}

// Script is a <script> element in the head: either a src or inline code.
type Script struct {
	Src    string `yaml:"src"`
	Inline string `yaml:"inline"`
	Attrs  Attrs  `yaml:"attrs"`
}

// Name returns the file name the document was parsed from.
func (d *Document) Name() string { return d.name }

// Load reads and parses the description at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("H025").
			WithDetail("Could not read " + path).
			Wrap(err)
	}
	return Parse(path, data)
}

// Parse parses a description. name is used in error locations; when it is
// a readable file the error also shows the surrounding lines.
func Parse(name string, data []byte) (*Document, error) {
	d := &Document{name: name}
	if err := yaml.Unmarshal(data, &d.root); err != nil {
		return nil, errors.New("H020").
			WithDetail("Could not parse " + name).
			Wrap(err)
	}
	if len(d.root.Content) == 0 {
		// Empty file: an empty page.
		return d, nil
	}
	if err := d.root.Decode(d); err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e
		}
		return nil, errors.New("H020").
			WithDetail("Invalid structure in " + name).
			Wrap(err)
	}
	return d, nil
}

// Entry is a description file found by Find.
type Entry struct {
	// Name is the file name without its extension, used as the page name.
	Name string
	// Path is the path of the file.
	Path string
}

// Find lists the description files directly inside dir, sorted by name.
// Extensions match case-insensitively. When several files share a name the
// one whose extension comes first in Extensions wins.
func Find(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New("H025").
			WithDetail("Could not list " + dir).
			Wrap(err)
	}

	best := make(map[string]int)
	var entries []Entry
	for _, f := range files {
		if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		rank := extensionRank(f.Name())
		if rank < 0 {
			continue
		}
		name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		entry := Entry{Name: name, Path: filepath.Join(dir, f.Name())}
		if i, ok := best[name]; ok {
			if rank < extensionRank(entries[i].Path) {
				entries[i] = entry
			}
			continue
		}
		best[name] = len(entries)
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Lookup returns the description file for a page name in dir. It resolves
// names exactly as Find lists them.
func Lookup(dir, name string) (Entry, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return Entry{}, false
	}
	entries, err := Find(dir)
	if err != nil {
		return Entry{}, false
	}
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// extensionRank returns the position of the file's extension in
// Extensions, or -1 if it is not a description.
func extensionRank(name string) int {
	ext := strings.ToLower(filepath.Ext(name))
	for i, e := range Extensions {
		if ext == e {
			return i
		}
	}
	return -1
}

// IsDescription reports whether a file name has a description extension.
func IsDescription(name string) bool {
	return extensionRank(name) >= 0
}
