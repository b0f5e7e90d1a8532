// Package fileutil wraps the byte-level file operations the link manager
// performs on behalf of a library: copying a document into a file
// directory and renaming one in place.
//
// These are the only operations in the tool that write to the filesystem,
// and the only ones whose failures are real errors rather than absent
// results. Every failure is wrapped with ErrIO so callers can tell an I/O
// problem (permissions, disk full) from the soft no-match outcomes of
// resolution and matching.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIO marks a filesystem operation failure.
var ErrIO = errors.New("i/o failure")

// Copy copies src to dst. When dst already exists and overwrite is false,
// nothing is copied and Copy returns (false, nil); that is a declined
// copy, not an error. On success the destination holds an exact byte copy
// of the source.
func Copy(src, dst string, overwrite bool) (bool, error) {
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return false, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("%w: open %s: %v", ErrIO, src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, fmt.Errorf("%w: create %s: %v", ErrIO, dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, fmt.Errorf("%w: copy %s to %s: %v", ErrIO, src, dst, err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("%w: close %s: %v", ErrIO, dst, err)
	}
	return true, nil
}

// Rename moves a file or directory from one path to another.
func Rename(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("%w: rename %s to %s: %v", ErrIO, from, to, err)
	}
	return nil
}
