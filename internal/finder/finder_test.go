package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"smith2020.pdf",
		"jones2019.PDF",
		"notes.txt",
		"sub/brown2021.pdf",
		".hidden/secret.pdf",
		".stray.pdf",
	)

	got := FindFiles([]string{"pdf"}, []string{dir})

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "smith2020.pdf"),
		filepath.Join(dir, "jones2019.PDF"),
		filepath.Join(dir, "sub", "brown2021.pdf"),
	}, got)
}

func TestFindFiles_AllExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.pdf", "b.txt", "plain")

	got := FindFiles(nil, []string{dir})
	assert.Len(t, got, 3)
}

func TestFindFiles_DottedExtensionSpec(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.pdf", "b.txt")

	got := FindFiles([]string{".pdf"}, []string{dir})
	assert.Equal(t, []string{filepath.Join(dir, "a.pdf")}, got)
}

func TestFindFiles_MissingAndEmptyDirsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.pdf")

	got := FindFiles([]string{"pdf"}, []string{"", filepath.Join(dir, "missing"), dir})
	assert.Equal(t, []string{filepath.Join(dir, "a.pdf")}, got)
}

func TestFindFiles_OverlappingDirsDeduplicated(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "sub/a.pdf")

	got := FindFiles([]string{"pdf"}, []string{dir, filepath.Join(dir, "sub")})
	assert.Equal(t, []string{filepath.Join(dir, "sub", "a.pdf")}, got)
}
