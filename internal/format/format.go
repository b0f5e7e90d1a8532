// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so command implementations focus on resolution
// and matching logic: column alignment for suffix listings, per-entry match
// blocks for autolink output.
package format

import (
	"fmt"
	"io"

	"github.com/jpl-au/biblinks/internal/bib"
)

// Paths prints paths one per line.
func Paths(w io.Writer, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// Suffixes prints each input path with its unique suffix, aligned.
func Suffixes(w io.Writer, paths, suffixes []string) {
	maxPath := 0
	for _, p := range paths {
		if len(p) > maxPath {
			maxPath = len(p)
		}
	}
	for i, p := range paths {
		fmt.Fprintf(w, "%-*s  %s\n", maxPath, p, suffixes[i])
	}
}

// Associations prints an autolink result grouped by entry, in entry order.
// Entries without a citation key or without matches show an empty block
// marker so the output accounts for every entry.
func Associations(w io.Writer, entries []*bib.Entry, assoc map[*bib.Entry][]string) {
	for _, entry := range entries {
		key := entry.Key
		if key == "" {
			key = "(no citation key)"
		}
		files := assoc[entry]
		if len(files) == 0 {
			fmt.Fprintf(w, "%s: no matches\n", key)
			continue
		}
		fmt.Fprintf(w, "%s:\n", key)
		for _, f := range files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
}
