package scatter

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), ".scatter-"), "temp file not cleaned: %s", e.Name())
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MT6765_Android_scatter.txt")

	require.NoError(t, WriteFile(path, []byte("v1"), 0o644))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v1", string(got))

	// An existing file is replaced.
	require.NoError(t, WriteFile(path, []byte("v2"), 0o644))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v2", string(got))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}

	assertNoTempFiles(t, dir)
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scatter.txt")

	err := WriteFile(path, []byte("data"), 0o644)
	require.Error(t, err)
	require.Contains(t, err.Error(), "create temp file")
}

func TestWriteFileKeepsOldFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the target makes the final rename fail.
	target := filepath.Join(dir, "scatter.txt")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("old"), 0o644))

	err := WriteFile(target, []byte("new"), 0o644)
	require.Error(t, err)

	got, err := os.ReadFile(filepath.Join(target, "keep"))
	require.NoError(t, err)
	require.Equal(t, "old", string(got))

	assertNoTempFiles(t, dir)
}
