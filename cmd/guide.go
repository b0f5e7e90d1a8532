// guide.go implements the "biblinks guide" command for documentation
// access.
//
// Guides are embedded in the binary via the guide package, so documentation
// is always available without external files. Terminal output gets glamour
// rendering for readability; pipe/redirect gets raw markdown for machine
// consumption.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/biblinks/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the biblinks usage guide",
		Long: `Outputs the biblinks guide for humans and LLMs.

  biblinks guide           # main guide
  biblinks guide autolink  # detailed autolink guide
  biblinks guide config    # detailed config guide`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(Out(), content)
			return nil
		},
	}
}
