// Package types defines the core types shared across tagicons.
// This includes the TagIconPair and Settings data model, the FS
// filesystem interface, and the result structures returned by commands.
package types
