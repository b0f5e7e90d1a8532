// unique.go implements the "biblinks unique" command: shortest unambiguous
// display names for a set of paths.

package cmd

import (
	"io"

	"github.com/jpl-au/biblinks/internal/format"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/jpl-au/biblinks/internal/pathutil"
	"github.com/spf13/cobra"
)

func newUniqueCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "unique PATH...",
		Short: "Compute minimal unique path suffixes",
		Long: `Compute, for each path, the shortest trailing run of segments that
distinguishes it from all the others. Useful for labelling several library
files in displays where full paths would be noise. Identical inputs stay
identical.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runUnique,
	}
	c.Flags().BoolP("long", "l", false, "Show each input path next to its suffix")
	return c
}

func runUnique(c *cobra.Command, args []string) error {
	long, _ := c.Flags().GetBool("long")

	suffixes := pathutil.Native().UniqueSuffixes(args)

	log.Event("path:unique", "list").Detail("paths", len(args)).Write(nil)

	w := Out()
	if JSON() {
		w = io.Discard
	}
	if long {
		format.Suffixes(w, args, suffixes)
	} else {
		format.Paths(w, suffixes)
	}
	return PrintJSON(map[string][]string{"suffixes": suffixes})
}
