// Package finder enumerates candidate document files by extension within
// a set of directories.
//
// This is the discovery half of automatic file linking: it produces the
// loose-file set that the autolink matcher assigns to entries. The scan is
// read-only and best-effort; unreadable or missing directories are skipped
// rather than failing the whole scan, since candidate lists routinely
// contain directories that only exist on another machine.
package finder

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jpl-au/biblinks/internal/pathutil"
)

// FindFiles walks each directory recursively and returns the files whose
// extension (case-insensitive, without dot) is in exts. An empty exts
// matches every file. Hidden files and directories (dot-prefixed) are
// skipped. Duplicate paths from overlapping directories appear once, in
// first-seen order.
func FindFiles(exts []string, dirs []string) []string {
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	seen := make(map[string]bool)
	var files []string

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Missing or unreadable: skip this subtree.
				return fs.SkipDir
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") && path != dir {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if len(want) > 0 {
				ext, ok := pathutil.Extension(name)
				if !ok || !want[ext] {
					return nil
				}
			}
			if !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			return nil
		})
	}

	return files
}
