// file: internal/repair/repair_test.go
// version: 1.0.0
// guid: 8e0f2a4b-6c7d-4e8f-9a0b-1c2d3e4f5a6b

package repair

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTree(t *testing.T, root string, tracks map[string][2]string) {
	t.Helper()
	for track, loc := range tracks {
		dir := filepath.Join(root, loc[0], loc[1])
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, track), []byte("data"), 0644))
	}
}

func TestRepair_AppendsMissingExtension(t *testing.T) {
	root := t.TempDir()
	seedTree(t, root, map[string][2]string{
		"track7":   {"ArtistA", "AlbumB"},
		"fine.mp3": {"ArtistA", "AlbumB"},
		"untitled": {"ArtistC", "Unknown Album"},
	})

	require.NoError(t, Repair(root, false))

	for _, want := range []string{
		filepath.Join(root, "ArtistA", "AlbumB", "track7.mp3"),
		filepath.Join(root, "ArtistA", "AlbumB", "fine.mp3"),
		filepath.Join(root, "ArtistC", "Unknown Album", "untitled.mp3"),
	} {
		_, err := os.Stat(want)
		assert.NoError(t, err, "expected %s to exist", want)
	}

	_, err := os.Stat(filepath.Join(root, "ArtistA", "AlbumB", "track7"))
	assert.True(t, os.IsNotExist(err), "old name should be gone")
}

func TestRepair_DryRunOnlyReports(t *testing.T) {
	root := t.TempDir()
	seedTree(t, root, map[string][2]string{
		"track7": {"ArtistA", "AlbumB"},
	})

	require.NoError(t, Repair(root, true))

	_, err := os.Stat(filepath.Join(root, "ArtistA", "AlbumB", "track7"))
	assert.NoError(t, err, "dry run must not rename")
	_, err = os.Stat(filepath.Join(root, "ArtistA", "AlbumB", "track7.mp3"))
	assert.True(t, os.IsNotExist(err))
}

func TestRepair_IgnoresStrayFiles(t *testing.T) {
	root := t.TempDir()
	seedTree(t, root, map[string][2]string{
		"track7": {"ArtistA", "AlbumB"},
	})
	// Files at the root or artist level are not part of the two-level tree.
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ArtistA", "cover.jpg"), []byte("x"), 0644))

	require.NoError(t, Repair(root, false))

	_, err := os.Stat(filepath.Join(root, "stray.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "ArtistA", "cover.jpg"))
	assert.NoError(t, err, "artist-level files are left alone")
}

func TestRepair_MissingRoot(t *testing.T) {
	err := Repair(filepath.Join(t.TempDir(), "absent"), false)
	assert.Error(t, err)
}
