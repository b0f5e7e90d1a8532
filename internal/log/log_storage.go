// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns: log.go provides the
// fluent API for building entries, this file handles persistence. SQLite
// enables cross-library log queries and structured filtering that plain
// text logs cannot. The library field stores a hash of the library path so
// entries can be aggregated per-library without recording the path itself.
//
// Design: errors during logging are best-effort. A resolve or autolink run
// should succeed even when its audit record cannot be written.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db *sql.DB
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	var library *string
	if e.Library != "" {
		h := hash(e.Library)
		library = &h
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, source, action, library, ref,
		                 resolved, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, e.Source, e.Action, library,
		nilIfEmpty(e.Ref), nilIfEmpty(e.Resolved),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		// Best-effort: report, never fail the main operation
		_, _ = fmt.Fprintf(os.Stderr, "biblinks: audit log write failed: %v\n", err)
	}
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory in unusual environments
		// (containers, restricted accounts) rather than silently failing.
		return filepath.Join(".biblinks", "log", "biblinks-log.db")
	}
	return filepath.Join(home, ".biblinks", "log", "biblinks-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a library identifier from a path, enabling per-library log
// aggregation without storing the path itself.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Cannot happen with a nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent use.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			source   TEXT NOT NULL,
			action   TEXT NOT NULL,
			library  TEXT,
			ref      TEXT,
			resolved TEXT,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_library ON log(library);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
