package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyBook(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	_, ok := b.Lookup(nil)
	assert.False(t, ok)
}

func TestLoadEmptyPathYieldsEmptyBook(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)
	_, ok := b.Lookup(nil)
	assert.False(t, ok)
}

func TestLookupFollowsRecordedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	require.NoError(t, os.WriteFile(path, []byte("e2e4 e7e5 g1f3\ne2e4 c7c5 g1f3\n"), 0644))

	b, err := Load(path)
	require.NoError(t, err)

	move, ok := b.Lookup(nil)
	require.True(t, ok)
	assert.Equal(t, "e2e4", move)

	move, ok = b.Lookup([]string{"e2e4"})
	require.True(t, ok)
	assert.Equal(t, "c7c5", move, "tied counts break on the smaller move string")

	_, ok = b.Lookup([]string{"e2e4", "e7e5", "g1f3", "b8c6"})
	assert.False(t, ok, "no recorded continuation beyond the stored lines")

	_, ok = b.Lookup([]string{"d2d4"})
	assert.False(t, ok, "move not found in any recorded game")
}

func TestLookupPrefersHigherCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	lines := "e2e4 e7e5\ne2e4 e7e5\ne2e4 e7e5\ne2e4 c7c5\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))

	b, err := Load(path)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		move, ok := b.Lookup([]string{"e2e4"})
		require.True(t, ok)
		assert.Equal(t, "e7e5", move, "e7e5 was recorded 3 times against c7c5's 1")
	}
}
