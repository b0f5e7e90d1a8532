// Testing strategy:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> config -> resolution/matching -> output.
// The core algorithms have their own unit tests under internal/; the
// tests here prove the wiring - flags reach the right options, config
// directories reach the resolver, output lands on stdout.
//
// Each test environment gets its own HOME so global config and the audit
// log stay inside the test sandbox.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the biblinks binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "biblinks-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "biblinks"
		if os.PathSeparator == '\\' {
			binaryName = "biblinks.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory and an isolated HOME.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// run executes biblinks with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("biblinks %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes biblinks and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// write creates a file under the environment's working directory,
// creating parent directories as needed, and returns its absolute path.
func (e *testEnv) write(rel, content string) string {
	e.t.Helper()

	path := filepath.Join(e.dir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// libraryYAML is the standard two-entry fixture used across CLI tests.
const libraryYAML = `entries:
  - key: smith2020
  - key: jones2019
`
