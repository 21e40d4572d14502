// Package paths provides centralized path handling for tagicons.
// It resolves the vault root and derives every well-known location
// from it: the host configuration directory, the settings blob, the
// snippet output file and the vault-level tagicons config.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tagicons/pkg/errors"
)

// Environment variable names
const (
	// EnvVaultRoot is the primary environment variable for the vault location
	EnvVaultRoot = "TAGICONS_VAULT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: The host reads snippets from a fixed location inside the
// vault, so ObsidianDirName and SnippetsDirName are NOT user-configurable.
// The snippet file name is the one user-configurable piece and belongs to
// pkg/config.
const (
	// ObsidianDirName is the host's configuration directory inside a vault
	ObsidianDirName = ".obsidian"

	// SnippetsDirName is the snippets directory inside the host config dir
	SnippetsDirName = "snippets"

	// DefaultSnippetFile is the default name of the generated stylesheet
	DefaultSnippetFile = "tags.css"

	// SettingsFileName is the name of the settings blob
	SettingsFileName = "tagicons.json"

	// ConfigFileName is the name of the vault-level tagicons config
	ConfigFileName = "tagicons.toml"

	// TagiconsDirName is the directory name for tagicons-specific files
	TagiconsDirName = "tagicons"

	// LogFileName is the name of the log file
	LogFileName = "tagicons.log"
)

// Paths provides centralized path management for tagicons
type Paths interface {
	VaultRoot() string
	UsedFallback() bool
	ObsidianDir() string
	SnippetsDir() string
	SnippetPath(filename string) string
	SettingsPath() string
	VaultConfigPath() string
	UserConfigPath() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	// vaultRoot is the root directory of the vault
	vaultRoot string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given vault root.
// If vaultRoot is empty, it is determined from the environment or by
// searching upward from the working directory for a host config dir.
func New(vaultRoot string) (Paths, error) {
	p := &paths{}

	if vaultRoot == "" {
		root, usedFallback, err := findVaultRoot()
		if err != nil {
			return nil, err
		}
		p.vaultRoot = root
		p.usedFallback = usedFallback
	} else {
		p.vaultRoot = expandHome(vaultRoot)
		p.usedFallback = false
	}

	absRoot, err := filepath.Abs(p.vaultRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for vault root")
	}
	p.vaultRoot = absRoot

	return p, nil
}

// findVaultRoot determines the vault root using the following priority:
// 1. TAGICONS_VAULT environment variable (if set)
// 2. The nearest ancestor of the working directory containing .obsidian
// 3. Current working directory (fallback)
//
// The returned bool reports whether the working directory was used as
// fallback, so callers can warn the user.
func findVaultRoot() (string, bool, error) {
	if root := os.Getenv(EnvVaultRoot); root != "" {
		return expandHome(root), false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	if root, ok := findVaultFrom(cwd); ok {
		return root, false, nil
	}

	return cwd, true, nil
}

// findVaultFrom walks from start toward the filesystem root and returns
// the first directory containing a host config dir.
func findVaultFrom(start string) (string, bool) {
	dir := start
	for {
		marker := filepath.Join(dir, ObsidianDirName)
		if info, err := os.Stat(marker); err == nil && info.IsDir() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// VaultRoot returns the root directory of the vault
func (p *paths) VaultRoot() string {
	return p.vaultRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// ObsidianDir returns the host configuration directory inside the vault
func (p *paths) ObsidianDir() string {
	return filepath.Join(p.vaultRoot, ObsidianDirName)
}

// SnippetsDir returns the directory the host loads CSS snippets from
func (p *paths) SnippetsDir() string {
	return filepath.Join(p.ObsidianDir(), SnippetsDirName)
}

// SnippetPath returns the path of the generated stylesheet. An empty
// filename selects the default.
func (p *paths) SnippetPath(filename string) string {
	if filename == "" {
		filename = DefaultSnippetFile
	}
	return filepath.Join(p.SnippetsDir(), filename)
}

// SettingsPath returns the path of the settings blob
func (p *paths) SettingsPath() string {
	return filepath.Join(p.ObsidianDir(), SettingsFileName)
}

// VaultConfigPath returns the path of the vault-level tagicons config
func (p *paths) VaultConfigPath() string {
	return filepath.Join(p.vaultRoot, ConfigFileName)
}

// UserConfigPath returns the path of the user-level tagicons config
// under the XDG config dir
func (p *paths) UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, TagiconsDirName, ConfigFileName)
}

// StateDir returns the XDG state directory for tagicons
func (p *paths) StateDir() string {
	return filepath.Join(xdg.StateHome, TagiconsDirName)
}

// LogFilePath returns the path to the tagicons log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.StateDir(), LogFileName)
}
