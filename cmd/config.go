// config.go implements the "biblinks config" command for reading and
// writing configuration keys.
//
// With no arguments it lists every key and its current value; with a key
// it prints that value; with a key and value it sets and saves. The
// --local flag targets the library-local scope for both reading and
// writing.

package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jpl-au/biblinks/internal/config"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration",
		Long: fmt.Sprintf(`Get or set configuration values.

  biblinks config                            # list all settings
  biblinks config files.directory            # print one value
  biblinks config files.directory ~/papers   # set (global scope)
  biblinks config --local files.ext.pdf ./pdf

Valid keys: %s`, strings.Join(config.ValidKeys(), ", ")),
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
}

func runConfig(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return PrintJSONError(err)
	}

	w := Out()
	if JSON() {
		w = io.Discard
	}

	switch len(args) {
	case 0:
		return printAllConfig(w, cfg)
	case 1:
		value, err := cfg.Get(args[0])
		if err != nil {
			return PrintJSONError(err)
		}
		fmt.Fprintln(w, value)
		return PrintJSON(map[string]string{args[0]: value})
	default:
		key, value := args[0], args[1]
		if !config.IsValidKey(key) {
			return PrintJSONError(fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(config.ValidKeys(), ", ")))
		}
		if err := cfg.Set(key, value); err != nil {
			return PrintJSONError(err)
		}

		scope := config.ScopeGlobal
		if Local() {
			scope = config.ScopeLocal
		}
		err := cfg.SaveScope(scope)

		log.Event("config:set", "write").Ref(key).Write(err)

		if err != nil {
			return PrintJSONError(err)
		}
		fmt.Fprintf(w, "%s = %s\n", key, value)
		return PrintJSON(map[string]string{key: value})
	}
}

func printAllConfig(w io.Writer, cfg *config.Config) error {
	values := map[string]string{}

	dir, _ := cfg.Get("files.directory")
	values["files.directory"] = dir
	exact, _ := cfg.Get("autolink.exact_key_only")
	values["autolink.exact_key_only"] = exact
	for ext := range cfg.Files.Extensions {
		v, _ := cfg.Get("files.ext." + ext)
		values["files.ext."+ext] = v
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s = %s\n", k, values[k])
	}
	return PrintJSON(values)
}
