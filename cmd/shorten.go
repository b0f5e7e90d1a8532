// shorten.go implements the "biblinks shorten" command, the inverse of
// expand: stripping a configured directory prefix from an absolute path.

package cmd

import (
	"fmt"
	"io"

	"github.com/jpl-au/biblinks/internal/log"
	"github.com/jpl-au/biblinks/internal/pathutil"
	"github.com/spf13/cobra"
)

func newShortenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shorten PATH [DIR...]",
		Short: "Make an absolute path relative to a candidate directory",
		Long: `Strip the first matching directory prefix from an absolute path.
Directories are tried in the order given and should be listed longest
first, so the most specific one strips. With no directories given, all
configured file directories are used, longest first. A path that matches
no directory is printed unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runShorten,
	}
}

func runShorten(_ *cobra.Command, args []string) error {
	path := args[0]
	dirs := args[1:]
	if len(dirs) == 0 {
		cfg, err := loadConfig()
		if err != nil {
			return PrintJSONError(err)
		}
		dirs = cfg.AllDirectories()
	}

	r := pathutil.Resolver{Platform: pathutil.Native()}
	short := r.Shorten(path, dirs)

	log.Event("path:shorten", "shorten").Ref(path).Resolved(short).Write(nil)

	w := Out()
	if JSON() {
		w = io.Discard
	}
	fmt.Fprintln(w, short)
	return PrintJSON(map[string]string{"path": short})
}
