// tools.go declares the MCP tools and their handlers.
//
// All tools are stateless: each call loads what it needs (configuration,
// the library file) and releases it when the call returns, so a long-lived
// server never holds a library open between calls.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jpl-au/biblinks/internal/autolink"
	"github.com/jpl-au/biblinks/internal/bib"
	"github.com/jpl-au/biblinks/internal/config"
	"github.com/jpl-au/biblinks/internal/finder"
	"github.com/jpl-au/biblinks/internal/log"
	"github.com/jpl-au/biblinks/internal/pathutil"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("biblinks_expand",
			mcp.WithDescription("Resolve a file reference to an existing absolute path by trying candidate directories in order"),
			mcp.WithString("name", mcp.Required(), mcp.Description("File reference, possibly relative")),
			mcp.WithArray("dirs", mcp.Description("Candidate directories in priority order (default: configured file directories)"),
				mcp.Items(map[string]any{"type": "string"})),
		),
		expandTool,
	)

	s.AddTool(
		mcp.NewTool("biblinks_shorten",
			mcp.WithDescription("Make an absolute path relative to the first matching candidate directory"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path to shorten")),
			mcp.WithArray("dirs", mcp.Description("Directories to try, longest first (default: configured file directories)"),
				mcp.Items(map[string]any{"type": "string"})),
		),
		shortenTool,
	)

	s.AddTool(
		mcp.NewTool("biblinks_unique",
			mcp.WithDescription("Compute the shortest unambiguous display suffix for each of several paths"),
			mcp.WithArray("paths", mcp.Required(), mcp.Description("Paths to disambiguate"),
				mcp.Items(map[string]any{"type": "string"})),
		),
		uniqueTool,
	)

	s.AddTool(
		mcp.NewTool("biblinks_autolink",
			mcp.WithDescription("Scan directories for document files and match them to library entries by citation key"),
			mcp.WithString("library", mcp.Required(), mcp.Description("Path to the library YAML file")),
			mcp.WithArray("dirs", mcp.Description("Directories to scan (default: configured file directories)"),
				mcp.Items(map[string]any{"type": "string"})),
			mcp.WithArray("exts", mcp.Description("File extensions to scan for (default: pdf)"),
				mcp.Items(map[string]any{"type": "string"})),
			mcp.WithBoolean("exact_only", mcp.Description("Match exact citation keys only (default: configured value)")),
		),
		autolinkTool,
	)

	s.AddTool(
		mcp.NewTool("biblinks_linked",
			mcp.WithDescription("List the files a library's entries link to, expanded to existing absolute paths"),
			mcp.WithString("library", mcp.Required(), mcp.Description("Path to the library YAML file")),
			mcp.WithArray("dirs", mcp.Description("Directories to resolve against (default: configured file directories)"),
				mcp.Items(map[string]any{"type": "string"})),
		),
		linkedTool,
	)
}

func expandTool(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}

	dirs := getStrings(req, "dirs")
	if dirs == nil {
		cfg, err := config.Load()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ext, _ := pathutil.Extension(name)
		dirs = cfg.Directories(ext)
	}

	r := pathutil.Resolver{Platform: pathutil.Native()}
	path, ok := r.Expand(name, dirs)

	log.Event("mcp:expand", "resolve").Ref(name).Resolved(path).Write(nil)

	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("cannot resolve %q in %d directories", name, len(dirs))), nil
	}
	return jsonResult(map[string]string{"path": path})
}

func shortenTool(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	dirs := getStrings(req, "dirs")
	if dirs == nil {
		cfg, err := config.Load()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dirs = cfg.AllDirectories()
	}

	r := pathutil.Resolver{Platform: pathutil.Native()}
	short := r.Shorten(path, dirs)

	log.Event("mcp:shorten", "shorten").Ref(path).Resolved(short).Write(nil)

	return jsonResult(map[string]string{"path": short})
}

func uniqueTool(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paths := getStrings(req, "paths")
	if len(paths) == 0 {
		return mcp.NewToolResultError("paths is required"), nil
	}

	suffixes := pathutil.Native().UniqueSuffixes(paths)

	log.Event("mcp:unique", "list").Detail("paths", len(paths)).Write(nil)

	return jsonResult(map[string][]string{"suffixes": suffixes})
}

func autolinkTool(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	libPath, err := req.RequireString("library")
	if err != nil {
		return mcp.NewToolResultError("library is required"), nil //nolint:nilerr
	}

	cfg, err := config.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lib, err := bib.LoadLibrary(libPath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dirs := getStrings(req, "dirs")
	if dirs == nil {
		dirs = cfg.AllDirectories()
	}
	exts := getStrings(req, "exts")
	if exts == nil {
		exts = []string{"pdf"}
	}

	opts := autolink.Options{ExactOnly: getBool(req, "exact_only", cfg.ExactKeyOnly())}

	files := finder.FindFiles(exts, dirs)
	assoc := autolink.Associate(lib.Entries, files, opts)

	type entryResult struct {
		Key   string   `json:"key"`
		Files []string `json:"files"`
	}
	result := make([]entryResult, len(lib.Entries))
	linked := 0
	for i, entry := range lib.Entries {
		result[i] = entryResult{Key: entry.Key, Files: assoc[entry]}
		linked += len(assoc[entry])
	}

	log.Event("mcp:autolink", "match").
		Library(libPath).
		Detail("scanned", len(files)).
		Detail("linked", linked).
		Write(nil)

	return jsonResult(result)
}

func linkedTool(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	libPath, err := req.RequireString("library")
	if err != nil {
		return mcp.NewToolResultError("library is required"), nil //nolint:nilerr
	}

	cfg, err := config.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lib, err := bib.LoadLibrary(libPath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dirs := getStrings(req, "dirs")
	if dirs == nil {
		dirs = cfg.AllDirectories()
	}

	r := pathutil.Resolver{Platform: pathutil.Native()}
	files := bib.LinkedFiles(lib.Entries, dirs, r)

	log.Event("mcp:linked", "list").Library(libPath).Detail("files", len(files)).Write(nil)

	return jsonResult(map[string][]string{"files": files})
}

// getBool extracts a boolean parameter from the MCP request arguments,
// returning def when the parameter is missing or not a boolean.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getStrings extracts a string array parameter from the MCP request
// arguments. Non-string elements are skipped. Returns nil (not an empty
// slice) when the parameter is absent, so callers can distinguish "not
// provided" from "provided but empty".
func getStrings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// jsonResult serialises v as indented JSON wrapped in an MCP text result.
// Failures are converted to MCP error results rather than Go errors so
// the client always receives a structured response.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
