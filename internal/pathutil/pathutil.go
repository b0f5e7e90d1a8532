// Package pathutil resolves the relationship between file references and
// the directories that hold them.
//
// All path logic is parameterised by a Platform so behaviour does not depend
// on the operating system the binary happens to run on. This matters for
// shared libraries: a library file written on Windows carries backslash
// separators and expects case-insensitive prefix matching, and must still
// resolve correctly when opened on Linux.
//
// Conventions:
//   - Separators in joined paths are normalised to the platform's canonical
//     separator
//   - Prefix comparison folds case only under a case-folding platform
//   - Results preserve the original casing of their input
package pathutil

import "strings"

// Platform describes the path conventions to resolve under.
type Platform struct {
	// Separator is the canonical path separator, "/" or "\\".
	Separator string
	// FoldCase enables case-insensitive path comparison.
	FoldCase bool
}

// Unix resolves with forward slashes and case-sensitive comparison.
var Unix = Platform{Separator: "/"}

// Windows resolves with backslashes and case-insensitive comparison.
var Windows = Platform{Separator: "\\", FoldCase: true}

// Extension returns the extension of a file name, trimmed and lowercased,
// without the dot. Returns false for names with no extension, dotfiles
// (".gitignore") and names ending in a dot ("archive.").
func Extension(name string) (string, bool) {
	pos := strings.LastIndexByte(name, '.')
	if pos > 0 && pos < len(name)-1 {
		return strings.ToLower(strings.TrimSpace(name[pos+1:])), true
	}
	return "", false
}

// Stem returns name with its final extension removed. Names without an
// extension are returned unchanged.
func Stem(name string) string {
	if pos := strings.LastIndexByte(name, '.'); pos > 0 {
		return name[:pos]
	}
	return name
}

// Base returns the final segment of path under this platform's separator
// convention. Unlike filepath.Base the host OS plays no part, so callers
// matching against base names behave the same everywhere. The backslash
// platform treats either slash as a separator, as Windows itself does.
func (p Platform) Base(path string) string {
	if i := strings.LastIndex(path, p.Separator); i >= 0 {
		path = path[i+len(p.Separator):]
	}
	if p.Separator == "\\" {
		if i := strings.LastIndexByte(path, '/'); i >= 0 {
			path = path[i+1:]
		}
	}
	return path
}

// normalise rewrites every separator in p, either kind, to the platform's
// canonical one.
func (p Platform) normalise(s string) string {
	if p.Separator == "\\" {
		return strings.ReplaceAll(s, "/", "\\")
	}
	return strings.ReplaceAll(s, "\\", "/")
}

// isAbs reports whether s is an absolute path under this platform's
// convention. On the backslash platform this recognises drive-letter paths
// ("C:\...") and UNC paths ("\\server\share").
func (p Platform) isAbs(s string) bool {
	if p.Separator == "\\" {
		if strings.HasPrefix(s, `\\`) {
			return true
		}
		return len(s) >= 3 && s[1] == ':' && (s[2] == '\\' || s[2] == '/')
	}
	return strings.HasPrefix(s, "/")
}
