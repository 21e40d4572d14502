// Package filesystem provides filesystem implementations for tagicons.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed variant
// used with in-memory filesystems in tests.
package filesystem
