// autolink.go implements the "biblinks autolink" command: scanning file
// directories and linking the findings to entries by citation key.
//
// Matching alone is read-only. With --write the matched files are recorded
// in the library's file fields, shortened against the scan and configured
// directories so the stored links stay portable; --dry-run shows that
// change as a diff instead of writing it.

package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/jpl-au/biblinks/internal/autolink"
	"github.com/jpl-au/biblinks/internal/bib"
	"github.com/jpl-au/biblinks/internal/diff"
	"github.com/jpl-au/biblinks/internal/finder"
	"github.com/jpl-au/biblinks/internal/format"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/jpl-au/biblinks/internal/pathutil"
	"github.com/jpl-au/biblinks/internal/progress"
	"github.com/spf13/cobra"
)

func newAutolinkCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "autolink LIBRARY [DIR...]",
		Short: "Link loose files to entries by citation key",
		Long: `Scan directories for document files and assign each file to at most one
entry: first by exact citation-key match on the file's stem, then (unless
exact-only matching is configured) by citation-key prefix on the file's
name. Files matching no entry are ignored. With no directories given, the
configured file directories are scanned.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAutolink,
	}
	c.Flags().StringSliceP("ext", "e", []string{"pdf"}, "File extensions to scan for")
	c.Flags().Bool("exact", false, "Match exact citation keys only (overrides config)")
	c.Flags().BoolP("write", "w", false, "Record matched files in the library's file fields")
	c.Flags().Bool("dry-run", false, "Show the library change as a diff without writing")
	return c
}

func runAutolink(c *cobra.Command, args []string) error {
	exts, _ := c.Flags().GetStringSlice("ext")
	write, _ := c.Flags().GetBool("write")
	dryRun, _ := c.Flags().GetBool("dry-run")

	cfg, err := loadConfig()
	if err != nil {
		return PrintJSONError(err)
	}

	lib, err := bib.LoadLibrary(args[0])
	if err != nil {
		return PrintJSONError(err)
	}

	dirs := args[1:]
	if len(dirs) == 0 {
		dirs = cfg.AllDirectories()
	}
	if len(dirs) == 0 {
		return PrintJSONError(fmt.Errorf("no directories to scan: pass them as arguments or set files.directory"))
	}

	opts := autolink.Options{ExactOnly: cfg.ExactKeyOnly()}
	if c.Flags().Changed("exact") {
		opts.ExactOnly, _ = c.Flags().GetBool("exact")
	}

	files := finder.FindFiles(exts, dirs)
	assoc := autolink.Associate(lib.Entries, files, opts)

	linked := 0
	for _, matches := range assoc {
		linked += len(matches)
	}

	log.Event("autolink:run", "match").
		Library(lib.Path()).
		Detail("scanned", len(files)).
		Detail("linked", linked).
		Detail("exact_only", opts.ExactOnly).
		Write(nil)

	w := Out()
	if JSON() {
		w = io.Discard
	}
	format.Associations(w, lib.Entries, assoc)

	if write || dryRun {
		if err := applyLinks(w, lib, assoc, dirs, cfg.AllDirectories(), dryRun); err != nil {
			return PrintJSONError(err)
		}
	}

	return PrintJSON(associationJSON(lib.Entries, assoc))
}

// applyLinks records matched files in the library, shortened against the
// scan and configured directories, then writes the library (or shows the
// pending change when dryRun).
func applyLinks(w io.Writer, lib *bib.Library, assoc map[*bib.Entry][]string, scanDirs, cfgDirs []string, dryRun bool) error {
	before, err := lib.Encode()
	if err != nil {
		return err
	}

	shortDirs := longestFirst(append(append([]string{}, scanDirs...), cfgDirs...))
	r := pathutil.Resolver{Platform: pathutil.Native()}

	total := 0
	for _, entry := range lib.Entries {
		total += len(assoc[entry])
	}
	prog := progress.New("Linking", total)
	defer prog.Done()

	for _, entry := range lib.Entries {
		for _, file := range assoc[entry] {
			entry.AddLink(r.Shorten(file, shortDirs))
			prog.Increment()
			prog.Print()
		}
	}

	after, err := lib.Encode()
	if err != nil {
		return err
	}

	d := diff.Compute(before, after, lib.Path(), lib.Path()+" (updated)")
	if dryRun {
		if d.Empty() {
			fmt.Fprintln(w, "No changes.")
			return nil
		}
		fmt.Fprint(w, d.Format(false))
		return nil
	}
	if d.Empty() {
		fmt.Fprintln(w, "No changes.")
		return nil
	}
	if err := lib.Save(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Updated %s\n", lib.Path())
	return nil
}

// longestFirst orders directories longest path first with duplicates
// removed, the precondition Shorten needs to strip the most specific
// prefix.
func longestFirst(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	var uniq []string
	for _, d := range dirs {
		if d != "" && !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	sort.SliceStable(uniq, func(i, j int) bool {
		return len(uniq[i]) > len(uniq[j])
	})
	return uniq
}

type entryJSON struct {
	Key   string   `json:"key"`
	Files []string `json:"files"`
}

func associationJSON(entries []*bib.Entry, assoc map[*bib.Entry][]string) []entryJSON {
	result := make([]entryJSON, len(entries))
	for i, entry := range entries {
		result[i] = entryJSON{Key: entry.Key, Files: assoc[entry]}
	}
	return result
}
