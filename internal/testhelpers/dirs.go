// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// DataDir creates a temporary directory with the .tickit structure.
// Returns the temp dir root and the path of a tasks file inside it, which
// does not exist yet.
// The temp dir is automatically cleaned up when the test completes.
func DataDir(t *testing.T) (tempDir, dataFile string) {
	t.Helper()
	tempDir = t.TempDir()
	dataDir := filepath.Join(tempDir, ".tickit")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	return tempDir, filepath.Join(dataDir, "todos.json")
}

// ConfigFile writes contents to a config.toml inside a temporary directory
// and returns its path.
func ConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}
