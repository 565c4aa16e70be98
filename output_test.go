package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteInput_CreatesDirectories(t *testing.T) {
	root := t.TempDir()

	path, err := writeInput(root, puzzleDate{Year: 2022, Day: 5}, []byte("123\n456"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "2022", "5", "input.txt"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "123\n456", string(got))
}

func TestWriteInput_Overwrites(t *testing.T) {
	root := t.TempDir()
	d := puzzleDate{Year: 2022, Day: 5}

	_, err := writeInput(root, d, []byte("an older and longer body\n"))
	require.NoError(t, err)
	path, err := writeInput(root, d, []byte("new"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp file left behind")
}

func TestWriteInput_FileBlocksDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "2022"), []byte("x"), 0o644))

	_, err := writeInput(root, puzzleDate{Year: 2022, Day: 5}, []byte("123"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mkdir")
}

func TestWriteInput_IgnoresStaleTempName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "2022", "5")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "input.txt.tmp"), 0o755))

	path, err := writeInput(root, puzzleDate{Year: 2022, Day: 5}, []byte("123"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "123", string(got))
}

func TestWriteInput_RemovesTempOnFailure(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "2022", "5")
	// A non-empty directory where input.txt should go makes the rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "input.txt", "keep"), 0o755))

	_, err := writeInput(root, puzzleDate{Year: 2022, Day: 5}, []byte("123"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "input.txt", entries[0].Name())
}
