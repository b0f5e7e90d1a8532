// mv.go implements the "biblinks mv" command: renaming a document file.

package cmd

import (
	"fmt"
	"io"

	"github.com/jpl-au/biblinks/internal/fileutil"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/spf13/cobra"
)

func newMvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv FROM TO",
		Short: "Rename a document file",
		Args:  cobra.ExactArgs(2),
		RunE:  runMv,
	}
}

func runMv(_ *cobra.Command, args []string) error {
	from, to := args[0], args[1]

	err := fileutil.Rename(from, to)

	log.Event("fileutil:mv", "rename").
		Ref(from).
		Resolved(to).
		Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	w := Out()
	if JSON() {
		w = io.Discard
	}
	fmt.Fprintf(w, "%s -> %s\n", from, to)
	return PrintJSON(map[string]string{"from": from, "to": to})
}
