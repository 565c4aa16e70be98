package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *logger { return newLoggerTo(io.Discard, true) }

// writeConfigFile writes content as .aocdown in a fresh temp dir and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), defaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
