package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))
}

func TestDiskImageCleanerRemovesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	writeTestFile(t, "uploads/car.png")

	NewDiskImageCleaner().Clear("/uploads/car.png")

	_, err := os.Stat("uploads/car.png")
	assert.True(t, os.IsNotExist(err))
}

func TestDiskImageCleanerSkipsEmptyAndPlaceholder(t *testing.T) {
	t.Chdir(t.TempDir())
	writeTestFile(t, DefaultCarImage)

	cleaner := NewDiskImageCleaner()
	cleaner.Clear("")
	cleaner.Clear(DefaultCarImage)

	_, err := os.Stat(DefaultCarImage)
	assert.NoError(t, err, "the shared placeholder must never be unlinked")
}

func TestDiskImageCleanerIgnoresMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NotPanics(t, func() {
		NewDiskImageCleaner().Clear("/uploads/never-existed.png")
	})
}
