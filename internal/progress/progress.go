// Package progress provides CLI progress indicators for directory scans.
// Output goes to stderr to keep stdout clean for piping, and TTY detection
// ensures proper formatting in both interactive and scripted usage.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// Scanning a handful of files finishes before the report would be useful.
const minItems = 5

// Progress tracks and displays operation progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, progress updates are suppressed.
func New(label string, total int) *Progress {
	return &Progress{
		w:     os.Stderr,
		label: label,
		total: total,
		isTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Increment advances the progress counter by one.
func (p *Progress) Increment() {
	p.current++
}

// Print writes the current progress to stderr. On TTY it overwrites the
// line in place; for non-TTY or small totals it is a no-op.
func (p *Progress) Print() {
	if p.total < minItems || !p.isTTY {
		return
	}

	pct := 0
	if p.total > 0 {
		pct = (p.current * 100) / p.total
	}
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
}

// Done clears the progress line (on TTY) to make way for final output.
func (p *Progress) Done() {
	if p.total < minItems || !p.isTTY {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", "                                        ")
}
