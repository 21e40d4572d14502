package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a vault with all dependencies wired up
type TestEnvironment struct {
	VaultRoot string
	FS        types.FS
	Paths     paths.Paths
	Store     store.Store
	Type      EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment with an .obsidian
// directory in place, so the vault root is discoverable.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.VaultRoot = "/virtual/vault"
		env.FS = NewTestFS()
	case EnvIsolated:
		env.VaultRoot = filepath.Join(t.TempDir(), "vault")
		env.FS = filesystem.NewOS()
		t.Setenv(paths.EnvVaultRoot, env.VaultRoot)
	}

	if err := env.FS.MkdirAll(filepath.Join(env.VaultRoot, paths.ObsidianDirName), 0755); err != nil {
		t.Fatalf("Failed to create vault structure: %v", err)
	}

	p, err := paths.New(env.VaultRoot)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p
	env.Store = store.New(env.FS, p.SettingsPath())

	return env
}

// SeedPairs writes a settings file holding the given pairs and returns
// the settings.
func (env *TestEnvironment) SeedPairs(pairs ...types.TagIconPair) *types.Settings {
	env.t.Helper()

	settings := types.DefaultSettings()
	settings.TagIconPairs = append(settings.TagIconPairs, pairs...)
	if err := env.Store.Save(settings); err != nil {
		env.t.Fatalf("Failed to seed settings: %v", err)
	}
	return settings
}

// SnippetPath returns the default snippet location for this vault.
func (env *TestEnvironment) SnippetPath() string {
	return env.Paths.SnippetPath("")
}

// ReadSnippet returns the snippet file content, failing the test when
// it cannot be read.
func (env *TestEnvironment) ReadSnippet() string {
	env.t.Helper()

	data, err := env.FS.ReadFile(env.SnippetPath())
	if err != nil {
		env.t.Fatalf("Failed to read snippet: %v", err)
	}
	return string(data)
}
