// resolve.go implements the bidirectional relative/absolute transform for
// file references.
//
// Expansion turns a (possibly relative) reference into an existing absolute
// path by probing an ordered list of candidate directories; shortening is
// the inverse, stripping the longest configured directory prefix. Existence
// probing is injectable so tests can exercise both platform conventions
// without creating files.

package pathutil

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Resolver expands and shortens file references against candidate
// directories under a given platform convention.
type Resolver struct {
	Platform Platform

	// Exists reports whether a path refers to an existing filesystem entry.
	// Nil means an os.Stat probe against the real filesystem.
	Exists func(string) bool
}

func (r Resolver) exists(path string) bool {
	if r.Exists != nil {
		return r.Exists(path)
	}
	_, err := os.Stat(path)
	return err == nil
}

// Expand converts a relative file reference to an absolute one, if
// necessary. A name that already refers to an existing entry is returned
// as given, regardless of dirs. Otherwise each directory is tried in order
// and the first join that exists wins. Empty directory entries are skipped.
//
// The boolean result is false when no directory yields an existing file;
// absence is a valid outcome, not an error.
func (r Resolver) Expand(name string, dirs []string) (string, bool) {
	if name == "" {
		return "", false
	}
	if r.exists(name) {
		return name, true
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		joined := r.join(dir, name)
		if r.exists(joined) {
			return joined, true
		}
	}
	return "", false
}

// Shorten converts an absolute path to one relative to the first matching
// directory. Directories must be supplied longest-first; a shorter prefix
// listed earlier silently wins and yields a longer result. The input is
// returned unchanged when it is empty, not absolute, or matches no
// directory.
//
// Prefix comparison follows the platform's case rules, but the remainder
// is cut from the original-case input, so an expansion of the result
// against the same directory reconstructs the path exactly.
func (r Resolver) Shorten(path string, dirs []string) string {
	if path == "" || !r.Platform.isAbs(path) {
		return path
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if !strings.HasSuffix(dir, r.Platform.Separator) {
			dir += r.Platform.Separator
		}
		if rest, ok := r.stripPrefix(path, dir); ok {
			return rest
		}
	}
	return path
}

// stripPrefix removes dir from the front of path under the platform's case
// rules and reports whether it matched. Folding can change a rune's byte
// length (U+212A Kelvin sign lowercases to a one-byte k), so the cut point
// is tracked on the original path rune by rune rather than computed from
// the directory's byte length.
func (r Resolver) stripPrefix(path, dir string) (string, bool) {
	if !r.Platform.FoldCase {
		if strings.HasPrefix(path, dir) {
			return path[len(dir):], true
		}
		return "", false
	}
	rest := path
	for _, dr := range dir {
		pr, size := utf8.DecodeRuneInString(rest)
		if size == 0 || unicode.ToLower(pr) != unicode.ToLower(dr) {
			return "", false
		}
		rest = rest[size:]
	}
	return rest, true
}

// join concatenates dir and name without doubling the separator, then
// normalises every separator to the platform's canonical one.
func (r Resolver) join(dir, name string) string {
	joined := dir + r.Platform.Separator + name
	if strings.HasSuffix(dir, r.Platform.Separator) {
		joined = dir + name
	}
	return r.Platform.normalise(joined)
}
