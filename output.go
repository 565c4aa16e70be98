package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const inputFileName = "input.txt"

// writeInput stores body as {root}/{year}/{day}/input.txt, replacing any
// previous file, and returns the written path.
func writeInput(root string, d puzzleDate, body []byte) (string, error) {
	dir := filepath.Join(root, d.dir())
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, inputFileName)
	if err := replaceFile(path, body, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ensureDir creates dir and its parents. An existing directory is not an
// error; anything else, including a file in the way, is.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// replaceFile writes b to a uniquely named temp file next to path and renames
// it over path. The temp file is removed on every failure.
func replaceFile(path string, b []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Chmod(perm); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
