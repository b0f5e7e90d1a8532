// root.go defines the root command and CLI execution entry point.
//
// Design: the audit log is opened before command execution and closed
// after; a log failure only produces a warning since logging is
// best-effort and must never block resolution or matching work.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/biblinks/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "biblinks",
	Short: "File-link manager for bibliographic libraries",
	Long: `biblinks resolves the relationship between bibliographic entries and the
files on disk that document them: expanding relative file links against
candidate directories, shortening absolute paths for portable storage, and
linking loose files to entries by citation key.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and closes the log before
// exit. Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newExpandCmd(),
		newShortenCmd(),
		newUniqueCmd(),
		newAutolinkCmd(),
		newLinkedCmd(),
		newCpCmd(),
		newMvCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
	)
}
