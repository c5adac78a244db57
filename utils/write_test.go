package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "jwks.json")

	require.NoError(t, WriteFile(filename, []byte("first"), 0600))
	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Equal(t, "first", string(b))

	st, err := os.Stat(filename)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), st.Mode().Perm())

	require.NoError(t, WriteFile(filename, []byte("second"), 0600))
	b, err = os.ReadFile(filename)
	require.NoError(t, err)
	require.Equal(t, "second", string(b))

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteFile_errors(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(dir, []byte("data"), 0600)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIsDir))

	err = WriteFile(filepath.Join(dir, "missing", "jwks.json"), []byte("data"), 0600)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed")
}
