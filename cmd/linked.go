// linked.go implements the "biblinks linked" command: listing the files a
// library's entries link to, expanded to existing absolute paths.

package cmd

import (
	"io"

	"github.com/jpl-au/biblinks/internal/bib"
	"github.com/jpl-au/biblinks/internal/format"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/jpl-au/biblinks/internal/pathutil"
	"github.com/jpl-au/biblinks/internal/progress"
	"github.com/spf13/cobra"
)

func newLinkedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "linked LIBRARY [DIR...]",
		Short: "List the existing files linked from a library",
		Long: `Expand every file link of every entry against the given directories (or
the configured file directories) and print the paths that exist on disk.
Links that resolve nowhere are omitted; the listing may be empty.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLinked,
	}
}

func runLinked(_ *cobra.Command, args []string) error {
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

	r := pathutil.Resolver{Platform: pathutil.Native()}

	prog := progress.New("Resolving", len(lib.Entries))
	var files []string
	for _, entry := range lib.Entries {
		files = append(files, bib.LinkedFiles([]*bib.Entry{entry}, dirs, r)...)
		prog.Increment()
		prog.Print()
	}
	prog.Done()

	log.Event("library:linked", "list").
		Library(lib.Path()).
		Detail("files", len(files)).
		Write(nil)

	w := Out()
	if JSON() {
		w = io.Discard
	}
	format.Paths(w, files)
	return PrintJSON(map[string][]string{"files": files})
}
