// library.go reads and writes the YAML library file the CLI operates on.
//
// Separated from bib.go to keep the entry model free of I/O. The library
// file is caller-owned data: the core packages only ever see the decoded
// entries, never the file.

package bib

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoLibrary is returned when the library file does not exist.
var ErrNoLibrary = errors.New("library file not found")

// Library is an ordered collection of entries loaded from a YAML file.
// Entry order is significant: it is the tie-breaking order for file
// matching.
type Library struct {
	Entries []*Entry `yaml:"entries"`

	path string
}

// LoadLibrary reads a library from path.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoLibrary, path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read library %s: %w", path, err)
	}

	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("malformed library %s: %w", path, err)
	}
	lib.path = path
	return &lib, nil
}

// Path returns the file this library was loaded from.
func (l *Library) Path() string { return l.path }

// Save writes the library back to the file it was loaded from.
func (l *Library) Save() error {
	return l.SaveTo(l.path)
}

// SaveTo writes the library to path.
func (l *Library) SaveTo(path string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write library %s: %w", path, err)
	}
	l.path = path
	return nil
}

// Encode returns the library's YAML form without writing it, for diffing
// a pending change against the file on disk.
func (l *Library) Encode() (string, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encode library: %w", err)
	}
	return string(data), nil
}
