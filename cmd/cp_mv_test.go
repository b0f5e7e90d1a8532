package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpCopiesFile(t *testing.T) {
	env := newTestEnv(t)
	env.write("smith2020.pdf", "content")

	out := env.run("cp", "smith2020.pdf", "copy.pdf")
	env.contains(out, "smith2020.pdf -> copy.pdf")

	data, err := os.ReadFile(filepath.Join(env.dir, "copy.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestCpDeclinesExistingDestination(t *testing.T) {
	env := newTestEnv(t)
	env.write("src.pdf", "new")
	env.write("dst.pdf", "old")

	out := env.run("cp", "src.pdf", "dst.pdf")
	env.contains(out, "not copied")

	data, err := os.ReadFile(filepath.Join(env.dir, "dst.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestCpForceOverwrites(t *testing.T) {
	env := newTestEnv(t)
	env.write("src.pdf", "new")
	env.write("dst.pdf", "old")

	env.run("cp", "-f", "src.pdf", "dst.pdf")

	data, err := os.ReadFile(filepath.Join(env.dir, "dst.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCpMissingSourceFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("cp", "absent.pdf", "copy.pdf")
	assert.Error(t, err)
}

func TestMvRenamesFile(t *testing.T) {
	env := newTestEnv(t)
	env.write("old.pdf", "content")

	out := env.run("mv", "old.pdf", "new.pdf")
	env.contains(out, "old.pdf -> new.pdf")

	_, err := os.Stat(filepath.Join(env.dir, "old.pdf"))
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(filepath.Join(env.dir, "new.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}
