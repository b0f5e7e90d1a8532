// suffix.go computes minimal unique path suffixes for display.
//
// Separated from resolve.go because suffix computation is a pure string
// algorithm with no filesystem involvement. Used wherever several library
// or directory paths must be shown side by side without ambiguity (window
// titles, directory pickers).

package pathutil

import "strings"

// UniqueSuffixes returns, for each input path, the shortest trailing run of
// segments that distinguishes it from every other input. The result is
// index-aligned with paths and each element is a suffix of the corresponding
// input's segment sequence.
//
// Identical inputs cannot be told apart and come back identical; that is
// accepted behaviour, not an error. A single input yields its last segment.
func (p Platform) UniqueSuffixes(paths []string) []string {
	segments := make([][]string, len(paths))
	for i, path := range paths {
		// A trailing separator names the same entry; keep the last real
		// segment as the leaf rather than an empty one.
		if len(path) > len(p.Separator) {
			path = strings.TrimSuffix(path, p.Separator)
		}
		segments[i] = strings.Split(path, p.Separator)
	}

	// cursor[i] indexes the next segment to prepend, walking leaf to root.
	// A frozen path takes no further segments.
	cursor := make([]int, len(paths))
	frozen := make([]bool, len(paths))
	for i := range segments {
		cursor[i] = len(segments[i]) - 1
	}

	suffixes := make([]string, len(paths))
	for {
		grew := false
		for i := range segments {
			if frozen[i] || cursor[i] < 0 {
				continue
			}
			grew = true
			seg := segments[i][cursor[i]]
			cursor[i]--
			if suffixes[i] == "" {
				suffixes[i] = seg
			} else {
				suffixes[i] = seg + p.Separator + suffixes[i]
			}
		}
		if !grew {
			// Remaining collisions are true duplicates; every path is
			// fully expanded.
			return suffixes
		}

		// Freeze every path whose suffix is already unambiguous. Frequency
		// counts the frozen ones too: a grown path may not stop on a suffix
		// that collides with an already-frozen result.
		freq := make(map[string]int, len(suffixes))
		for _, s := range suffixes {
			freq[s]++
		}
		for i, s := range suffixes {
			if freq[s] == 1 {
				frozen[i] = true
			}
		}
	}
}
