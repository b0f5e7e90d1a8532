package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectories(t *testing.T) {
	cfg := &Config{
		Files: Files{
			Directory: "/files",
			Extensions: map[string]string{
				"pdf": "/files/pdf",
				"ps":  "/files", // same as general, must dedupe
			},
		},
	}

	tests := []struct {
		ext  string
		want []string
	}{
		{"pdf", []string{"/files/pdf", "/files"}},
		{"ps", []string{"/files"}},
		{"txt", []string{"/files"}},
		{"", []string{"/files"}},
	}

	for _, tt := range tests {
		t.Run("ext="+tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Directories(tt.ext))
		})
	}
}

func TestDirectories_NothingConfigured(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.Directories("pdf"))
}

func TestAllDirectories_LongestFirst(t *testing.T) {
	cfg := &Config{
		Files: Files{
			Directory: "/home/user/files",
			Extensions: map[string]string{
				"pdf": "/home/user/files/papers/pdf",
				"txt": "/home/user/files/notes",
			},
		},
	}

	assert.Equal(t, []string{
		"/home/user/files/papers/pdf",
		"/home/user/files/notes",
		"/home/user/files",
	}, cfg.AllDirectories())
}

func TestGetSet(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.Set("files.directory", "/files"))
	got, err := cfg.Get("files.directory")
	require.NoError(t, err)
	assert.Equal(t, "/files", got)

	require.NoError(t, cfg.Set("files.ext.PDF", "/files/pdf"))
	got, err = cfg.Get("files.ext.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/files/pdf", got)

	// Empty value removes a per-extension directory.
	require.NoError(t, cfg.Set("files.ext.pdf", ""))
	got, err = cfg.Get("files.ext.pdf")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, cfg.Set("autolink.exact_key_only", "true"))
	assert.True(t, cfg.ExactKeyOnly())

	assert.ErrorIs(t, cfg.Set("autolink.exact_key_only", "maybe"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("bogus.key", "x"), ErrUnknownKey)
	_, err = cfg.Get("bogus.key")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestExactKeyOnly_Default(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.ExactKeyOnly())
}

func TestLoadScope_MissingFileGivesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	assert.Empty(t, cfg.Files.Directory)
	assert.False(t, cfg.ExactKeyOnly())
}

func TestSaveLoad_Local(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := &Config{}
	require.NoError(t, cfg.Set("files.directory", "/files"))
	require.NoError(t, cfg.Set("files.ext.pdf", "/files/pdf"))
	require.NoError(t, cfg.SaveScope(ScopeLocal))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, loaded.Scope())
	assert.Equal(t, "/files", loaded.Files.Directory)
	assert.Equal(t, "/files/pdf", loaded.Files.Extensions["pdf"])
}
