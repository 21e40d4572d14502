package types

import (
	"io/fs"
)

// FS is the filesystem interface required for tagicons operations.
// The OS implementation lives in pkg/filesystem; tests use the
// afero-backed in-memory implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}
