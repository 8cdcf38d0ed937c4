package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSpoolStore_CreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "spool")

	_, err := NewSpoolStore(base, zap.NewNop())

	require.NoError(t, err)
	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSpoolStore_SaveAndRemove(t *testing.T) {
	base := t.TempDir()
	store, err := NewSpoolStore(base, zap.NewNop())
	require.NoError(t, err)

	content := []byte("%PDF-1.3 test content")
	path, err := store.Save("invoice", content)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(path), "invoice-"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))
	assert.Equal(t, base, filepath.Dir(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSpoolStore_SaveGeneratesUniquePaths(t *testing.T) {
	store, err := NewSpoolStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	first, err := store.Save("invoice", []byte("a"))
	require.NoError(t, err)
	second, err := store.Save("invoice", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSpoolStore_RemoveRefusesOutsidePaths(t *testing.T) {
	store, err := NewSpoolStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "victim.pdf")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0644))

	err = store.Remove(outside)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes spool directory")

	_, err = os.Stat(outside)
	assert.NoError(t, err, "file outside the spool dir is untouched")
}

func TestSpoolStore_RemoveRefusesTraversal(t *testing.T) {
	base := t.TempDir()
	store, err := NewSpoolStore(base, zap.NewNop())
	require.NoError(t, err)

	err = store.Remove(filepath.Join(base, "..", "other.pdf"))
	require.Error(t, err)
}
