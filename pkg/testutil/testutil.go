// Package testutil provides helpers for tests: real-filesystem file
// fixtures, an in-memory types.FS, and a preassembled vault
// environment.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	if !FileExists(t, path) {
		t.Fatalf("File %s does not exist", path)
	}

	actual := ReadFile(t, path)
	if actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNoFile checks that a file does not exist.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("File %s exists but should not", path)
	}
}
