// expand.go implements the "biblinks expand" command: turning a (possibly
// relative) file reference into an existing absolute path.

package cmd

import (
	"fmt"
	"io"

	"github.com/jpl-au/biblinks/internal/config"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/jpl-au/biblinks/internal/pathutil"
	"github.com/spf13/cobra"
)

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand NAME [DIR...]",
		Short: "Resolve a file reference against candidate directories",
		Long: `Resolve a file reference to an existing path. A reference that already
exists is returned as given. Otherwise each directory is tried in order and
the first join that exists wins. With no directories given, the configured
file directories for the reference's extension are used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExpand,
	}
}

func runExpand(_ *cobra.Command, args []string) error {
	name := args[0]
	dirs := args[1:]
	if len(dirs) == 0 {
		cfg, err := loadConfig()
		if err != nil {
			return PrintJSONError(err)
		}
		ext, _ := pathutil.Extension(name)
		dirs = cfg.Directories(ext)
	}

	r := pathutil.Resolver{Platform: pathutil.Native()}
	path, ok := r.Expand(name, dirs)

	var err error
	if !ok {
		err = fmt.Errorf("cannot resolve %q in %d directories", name, len(dirs))
	}

	log.Event("path:expand", "resolve").Ref(name).Resolved(path).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	w := Out()
	if JSON() {
		w = io.Discard
	}
	fmt.Fprintln(w, path)
	return PrintJSON(map[string]string{"path": path})
}

// loadConfig loads configuration honouring the --local flag.
func loadConfig() (*config.Config, error) {
	if Local() {
		return config.LoadScope(config.ScopeLocal)
	}
	return config.Load()
}
