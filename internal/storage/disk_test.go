package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	content := []byte("stored bytes")
	require.NoError(t, store.Put(ctx, "abc_notes.pdf", bytes.NewReader(content), int64(len(content))))

	reader, info, err := store.Open(ctx, "abc_notes.pdf")
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, int64(len(content)), info.Size)

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, store.Remove(ctx, "abc_notes.pdf"))
	_, _, err = store.Open(ctx, "abc_notes.pdf")
	assert.Error(t, err)
}

func TestDiskStorePathStaysFlat(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	// Path traversal in a stored name cannot escape the upload dir.
	path := store.Path("../escape.txt")
	assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
}

func TestNewDiskStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStore(dir)
	require.NoError(t, err)

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
