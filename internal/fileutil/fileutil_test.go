package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	dst := filepath.Join(dir, "dst.pdf")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	copied, err := Copy(src, dst, false)
	require.NoError(t, err)
	assert.True(t, copied)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestCopy_ExistingDestinationDeclined(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	dst := filepath.Join(dir, "dst.pdf")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	copied, err := Copy(src, dst, false)
	require.NoError(t, err)
	assert.False(t, copied)

	data, _ := os.ReadFile(dst)
	assert.Equal(t, "old", string(data), "declined copy must not touch destination")

	copied, err = Copy(src, dst, true)
	require.NoError(t, err)
	assert.True(t, copied)

	data, _ = os.ReadFile(dst)
	assert.Equal(t, "new", string(data))
}

func TestCopy_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Copy(filepath.Join(dir, "none.pdf"), filepath.Join(dir, "dst.pdf"), false)
	assert.ErrorIs(t, err, ErrIO)
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "a.pdf")
	to := filepath.Join(dir, "b.pdf")
	require.NoError(t, os.WriteFile(from, []byte("x"), 0o644))

	require.NoError(t, Rename(from, to))

	_, err := os.Stat(to)
	assert.NoError(t, err)
	_, err = os.Stat(from)
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, Rename(from, to), ErrIO)
}
