// Package mcp implements the Model Context Protocol server, exposing
// biblinks operations to LLMs. This lets AI assistants resolve file
// references, compute display names, and run autolink against a library
// through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio. Uses stdio transport for
// compatibility with Claude Desktop and other MCP clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"biblinks",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	slog.Info("biblinks MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}
