package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTemp_CreatesAndRemovesDirectory(t *testing.T) {
	dir, err := NewTemp(t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(dir.Path())
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, dir.Close())
	_, err = os.Stat(dir.Path())
	require.True(t, os.IsNotExist(err))
}

func TestNewTemp_DirectoriesAreUnique(t *testing.T) {
	base := t.TempDir()

	first, err := NewTemp(base)
	require.NoError(t, err)
	second, err := NewTemp(base)
	require.NoError(t, err)

	require.NotEqual(t, first.Path(), second.Path())

	// Closing one run's directory must not touch the other's.
	require.NoError(t, first.Close())
	info, err := os.Stat(second.Path())
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.NoError(t, second.Close())
}

func TestClose_IsIdempotent(t *testing.T) {
	dir, err := NewTemp(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, dir.Close())
	require.NoError(t, dir.Close())
}

func TestNewPersistent_SurvivesClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "working")
	dir, err := NewPersistent(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(path, "marker"), []byte("x"), 0o600))

	require.NoError(t, dir.Close())
	_, err = os.Stat(filepath.Join(path, "marker"))
	require.NoError(t, err)
}
