// Package autolink assigns loose document files to bibliographic entries
// by matching file names against citation keys.
//
// Matching is per-file: each file is offered to every entry for an exact
// stem match first, then (unless exact-only matching is configured) to
// every entry for a base-name prefix match, and the first entry to match
// claims the file outright. A claimed file is never offered again, so no
// file ends up linked to two entries. Files nothing claims are dropped
// silently; their absence from the result is the signal.
//
// Citation keys are assumed unique. When they are not, the earliest
// matching entry in supplied order wins; that is a library problem, not
// one this package guards against.
package autolink

import (
	"strings"

	"github.com/jpl-au/biblinks/internal/bib"
	"github.com/jpl-au/biblinks/internal/finder"
	"github.com/jpl-au/biblinks/internal/pathutil"
)

// Options configures matching behaviour.
type Options struct {
	// ExactOnly disables the prefix-matching pass, so only files whose
	// stem equals a citation key exactly are linked.
	ExactOnly bool

	// Platform supplies the separator convention for extracting base
	// names from file paths. The zero value means the host platform.
	Platform pathutil.Platform
}

// Associate assigns each file to at most one entry. Every entry is present
// in the result, keyless and matchless ones with an empty slot.
func Associate(entries []*bib.Entry, files []string, opts Options) map[*bib.Entry][]string {
	if opts.Platform.Separator == "" {
		opts.Platform = pathutil.Native()
	}

	result := make(map[*bib.Entry][]string, len(entries))
	for _, entry := range entries {
		result[entry] = []string{}
	}

	for _, file := range files {
		if entry := match(entries, file, opts); entry != nil {
			result[entry] = append(result[entry], file)
		}
	}

	return result
}

// match returns the entry that claims file, or nil. Both passes run for
// this file before the next file is considered: exact stem equality across
// all entries, then base-name prefix across all entries.
func match(entries []*bib.Entry, file string, opts Options) *bib.Entry {
	name := opts.Platform.Base(file)

	if dot := strings.LastIndexByte(name, '.'); dot > 0 {
		stem := name[:dot]
		for _, entry := range entries {
			if entry.Key != "" && stem == entry.Key {
				return entry
			}
		}
	}

	if opts.ExactOnly {
		return nil
	}

	for _, entry := range entries {
		if entry.Key != "" && strings.HasPrefix(name, entry.Key) {
			return entry
		}
	}

	return nil
}

// Search scans dirs for files with the given extensions and associates
// the findings with entries.
func Search(entries []*bib.Entry, exts, dirs []string, opts Options) map[*bib.Entry][]string {
	return Associate(entries, finder.FindFiles(exts, dirs), opts)
}
