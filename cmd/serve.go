// serve.go implements the "biblinks serve" command, starting the MCP
// server over stdio for LLM integration.

package cmd

import (
	"github.com/jpl-au/biblinks/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio)",
		Long: `Expose biblinks operations over the Model Context Protocol so LLM
clients can resolve file references and run autolink against a library.
Communication is JSON-RPC over stdio; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}
