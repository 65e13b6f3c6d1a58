// ABOUTME: Tests for the file-backed key-value store
// ABOUTME: Covers round-trips, missing keys, and delete semantics

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_ReadMissingKey(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	_, err := fs.Read("identity")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_ReadBeforeDirExists(t *testing.T) {
	// The config dir may not exist until the first write.
	fs := NewFileStore(filepath.Join(t.TempDir(), "never-created"))

	_, err := fs.Read("credential")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_WriteReadRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "skillserve"))

	require.NoError(t, fs.Write("credential", []byte("tok123")))

	got, err := fs.Read("credential")
	require.NoError(t, err)
	require.Equal(t, []byte("tok123"), got)
}

func TestFileStore_WriteCreatesRestrictedFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skillserve")
	fs := NewFileStore(dir)

	require.NoError(t, fs.Write("credential", []byte("secret")))

	info, err := os.Stat(filepath.Join(dir, "credential"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())
}

func TestFileStore_Overwrite(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	require.NoError(t, fs.Write("identity", []byte("first")))
	require.NoError(t, fs.Write("identity", []byte("second")))

	got, err := fs.Read("identity")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), got)
}

func TestFileStore_Delete(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	require.NoError(t, fs.Write("identity", []byte("x")))
	require.NoError(t, fs.Delete("identity"))

	_, err := fs.Read("identity")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_DeleteAbsentKey(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	require.NoError(t, fs.Delete("nothing-here"))
}

func TestMemStore_RoundTrip(t *testing.T) {
	ms := NewMemStore()

	_, err := ms.Read("k")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, ms.Write("k", []byte("v")))
	got, err := ms.Read("k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, ms.Delete("k"))
	_, err = ms.Read("k")
	require.ErrorIs(t, err, ErrNotFound)
}
