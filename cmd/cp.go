// cp.go implements the "biblinks cp" command: copying a document into a
// file directory, typically before linking it.

package cmd

import (
	"fmt"
	"io"

	"github.com/jpl-au/biblinks/internal/fileutil"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/spf13/cobra"
)

func newCpCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cp SRC DST",
		Short: "Copy a document file",
		Long: `Copy a file byte-for-byte. An existing destination is left untouched
unless --force is given.`,
		Args: cobra.ExactArgs(2),
		RunE: runCp,
	}
	c.Flags().BoolP("force", "f", false, "Overwrite an existing destination")
	return c
}

func runCp(c *cobra.Command, args []string) error {
	force, _ := c.Flags().GetBool("force")
	src, dst := args[0], args[1]

	copied, err := fileutil.Copy(src, dst, force)

	log.Event("fileutil:cp", "copy").
		Ref(src).
		Resolved(dst).
		Detail("copied", copied).
		Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	w := Out()
	if JSON() {
		w = io.Discard
	}
	if !copied {
		fmt.Fprintf(w, "%s exists, not copied (use --force to overwrite)\n", dst)
	} else {
		fmt.Fprintf(w, "%s -> %s\n", src, dst)
	}
	return PrintJSON(map[string]any{"copied": copied})
}
