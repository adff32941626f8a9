package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[log]
level = "debug"

[engine]
default_depth = 8
book_file = "openings.txt"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, 8, s.Engine.DefaultDepth)
	assert.Equal(t, "openings.txt", s.Engine.BookFile)
}

func TestLoadMalformedFileIsNonFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml {{{"), 0644))

	s, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), s)
}
