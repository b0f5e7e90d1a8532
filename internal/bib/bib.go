// Package bib models bibliographic entries and the file links attached to
// them.
//
// An entry is opaque to this tool beyond two things: its citation key, used
// as a file-matching token, and its file field, an encoded list of links to
// documents on disk. The file field uses the description:path:type encoding
// shared with other reference managers, so libraries can move between tools:
//
//	:papers/smith2020.pdf:PDF;Review draft:drafts/review.pdf:PDF
//
// Colons, semicolons and backslashes inside a field are escaped with a
// backslash.
package bib

import (
	"strings"

	"github.com/jpl-au/biblinks/internal/pathutil"
)

// Entry is a bibliographic record, reduced to the attributes file-link
// management needs.
type Entry struct {
	// Key is the citation key, a short human-memorable identifier.
	// May be empty; keyless entries never participate in matching.
	Key string `yaml:"key"`

	// File holds the encoded file links. Use Links and SetLinks rather
	// than manipulating the raw encoding.
	File string `yaml:"file,omitempty"`
}

// FileLink is one decoded element of an entry's file field.
type FileLink struct {
	Description string
	Path        string
	Type        string
}

// Links decodes the entry's file field. An empty field yields nil.
func (e *Entry) Links() []FileLink {
	return ParseFileField(e.File)
}

// SetLinks replaces the entry's file field with the encoding of links.
func (e *Entry) SetLinks(links []FileLink) {
	e.File = EncodeFileField(links)
}

// AddLink appends a link for path unless one with the same path is already
// present. The link type is derived from the path's extension, uppercased
// ("pdf" becomes "PDF").
func (e *Entry) AddLink(path string) {
	links := e.Links()
	for _, l := range links {
		if l.Path == path {
			return
		}
	}
	var typ string
	if ext, ok := pathutil.Extension(path); ok {
		typ = strings.ToUpper(ext)
	}
	e.SetLinks(append(links, FileLink{Path: path, Type: typ}))
}

// ParseFileField decodes a description:path:type link list. Links are
// separated by semicolons, fields by colons; a backslash escapes the next
// character. Links whose fields are all empty are dropped. Fields beyond
// the third are folded into the type, colons intact, rather than rejected.
func ParseFileField(value string) []FileLink {
	if value == "" {
		return nil
	}

	var links []FileLink
	var fields []string
	var buf strings.Builder
	escaped := false

	endField := func() {
		fields = append(fields, buf.String())
		buf.Reset()
	}
	endLink := func() {
		endField()
		l := makeLink(fields)
		if l != (FileLink{}) {
			links = append(links, l)
		}
		fields = fields[:0]
	}

	for _, r := range value {
		switch {
		case escaped:
			buf.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ';':
			endLink()
		case r == ':' && len(fields) < 2:
			endField()
		default:
			buf.WriteRune(r)
		}
	}
	endLink()

	return links
}

func makeLink(fields []string) FileLink {
	var l FileLink
	// A bare value without separators is a path, not a description.
	if len(fields) == 1 {
		l.Path = strings.TrimSpace(fields[0])
		return l
	}
	if len(fields) > 0 {
		l.Description = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		l.Path = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		l.Type = strings.TrimSpace(fields[2])
	}
	return l
}

// EncodeFileField is the inverse of ParseFileField.
func EncodeFileField(links []FileLink) string {
	var b strings.Builder
	for i, l := range links {
		if i > 0 {
			b.WriteByte(';')
		}
		writeEscaped(&b, l.Description)
		b.WriteByte(':')
		writeEscaped(&b, l.Path)
		b.WriteByte(':')
		writeEscaped(&b, l.Type)
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, field string) {
	for _, r := range field {
		if r == ':' || r == ';' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
}

// LinkedFiles expands every file link of every entry against dirs and
// returns the paths that exist on disk, in entry order. Links that resolve
// nowhere are skipped; the result may be empty.
func LinkedFiles(entries []*Entry, dirs []string, r pathutil.Resolver) []string {
	var files []string
	for _, entry := range entries {
		for _, link := range entry.Links() {
			if expanded, ok := r.Expand(link.Path, dirs); ok {
				files = append(files, expanded)
			}
		}
	}
	return files
}
