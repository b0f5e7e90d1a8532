// Package log provides centralised audit logging for biblinks operations.
// Entries are stored in ~/.biblinks/log/biblinks-log.db and track CLI
// commands and MCP tool invocations across libraries.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("path:expand", "resolve").
//		Ref(name).
//		Resolved(path).
//		Write(err)
//
//	log.Event("autolink:run", "match").
//		Library(libPath).
//		Detail("linked", linked).
//		Write(err)
//
// The source parameter follows the format "{area}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g., "path:expand", "mcp:autolink"
	Action  string // verb: resolve, shorten, match, copy, rename
	Library string // input: library file the operation ran against
	Ref     string // input: file reference or path requested

	// Resolved is populated after the operation succeeds with the path
	// the input resolved to, when different from the input.
	Resolved string

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated, "{area}:{command}"
// for CLI commands (e.g., "path:expand", "autolink:run") or "mcp:{tool}"
// for MCP tools. The action describes the operation performed: "resolve",
// "shorten", "match", "copy", "rename", "list".
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Library sets the library file this operation ran against.
func (b *Builder) Library(path string) *Builder {
	b.entry.Library = path
	return b
}

// Ref sets the file reference or path the operation was asked to handle.
func (b *Builder) Ref(ref string) *Builder {
	b.entry.Ref = ref
	return b
}

// Resolved sets the path the input resolved to (output). Set only after
// confirming success.
func (b *Builder) Resolved(path string) *Builder {
	b.entry.Resolved = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map. Use for
// operation-specific data that doesn't fit standard fields: extension
// filters, match counts, destination paths. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. This is the standard way to complete a log entry after an
// operation:
//
//	resolved, ok := r.Expand(name, dirs)
//	log.Event("path:expand", "resolve").Ref(name).Write(nil)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
