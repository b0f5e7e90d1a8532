package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigSetAndGet(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "files.directory", "/opt/papers")
	env.contains(out, "files.directory = /opt/papers")

	out = env.run("config", "files.directory")
	env.equals(out, "/opt/papers")
}

func TestConfigListShowsAllKeys(t *testing.T) {
	env := newTestEnv(t)
	env.run("config", "files.directory", "/opt/papers")
	env.run("config", "files.ext.pdf", "/opt/papers/pdf")

	out := env.run("config")
	env.contains(out, "files.directory = /opt/papers")
	env.contains(out, "files.ext.pdf = /opt/papers/pdf")
	env.contains(out, "autolink.exact_key_only = false")
}

func TestConfigLocalScopeWritesWorkingDirectory(t *testing.T) {
	env := newTestEnv(t)

	env.run("--local", "config", "files.directory", "./papers")

	_, err := os.Stat(filepath.Join(env.dir, ".biblinks", "config.yaml"))
	assert.NoError(t, err)

	// The global scope must not have picked the value up.
	_, err = os.Stat(filepath.Join(env.home, ".biblinks", "config.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfigUnknownKeyRejected(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("config", "files.bogus", "value")
	assert.Error(t, err)
	env.contains(out, "unknown config key")
}

func TestConfigExactKeyOnlyValidation(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "autolink.exact_key_only", "true")
	env.contains(out, "autolink.exact_key_only = true")

	_, err := env.runErr("config", "autolink.exact_key_only", "maybe")
	assert.Error(t, err)
}
