package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyFile_CreatesMissingParents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "a", "b", "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestCopyFile_OverwritesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old content"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestCopyTree_MergesIntoExistingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "extra.txt"), []byte("keep"), 0o644))

	require.NoError(t, CopyTree(src, dst))

	copied, err := os.ReadFile(filepath.Join(dst, "css", "style.css"))
	require.NoError(t, err)
	require.Equal(t, "body{}", string(copied))

	kept, err := os.ReadFile(filepath.Join(dst, "extra.txt"))
	require.NoError(t, err)
	require.Equal(t, "keep", string(kept))
}

func TestTouch_CreatesEmptyFileAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nojekyll")

	require.NoError(t, Touch(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())

	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	require.NoError(t, Touch(path))
	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestExists_DistinguishesFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	require.True(t, Exists(file))
	require.False(t, Exists(dir))
	require.False(t, Exists(filepath.Join(dir, "absent")))

	require.True(t, DirExists(dir))
	require.False(t, DirExists(file))
}
