// Package config loads the layered tagicons configuration: embedded
// defaults first, then the user config file, then the vault config
// file, then TAGICONS_* environment variables. Later layers win.
package config

import (
	"github.com/arthur-debert/tagicons/pkg/paths"
)

// Config holds every user-configurable setting.
type Config struct {
	Snippet SnippetConfig `koanf:"snippet"`
	Badge   BadgeConfig   `koanf:"badge"`
}

// SnippetConfig controls the generated stylesheet file.
type SnippetConfig struct {
	// File is the stylesheet filename inside the snippets directory.
	// The directory itself is fixed, the host only reads from there.
	File string `koanf:"file"`
}

// BadgeConfig styles the icon badge in the generated rules. Values are
// plain CSS, so host theme variables work.
type BadgeConfig struct {
	Background string `koanf:"background"`
	Border     string `koanf:"border"`
	Radius     string `koanf:"radius"`
}

// Default returns the built-in configuration. It matches the embedded
// defaults file, so loading with no config files present yields the
// same values.
func Default() *Config {
	return &Config{
		Snippet: SnippetConfig{
			File: paths.DefaultSnippetFile,
		},
		Badge: BadgeConfig{
			Background: "var(--background-secondary-alt)",
			Border:     "1px solid var(--background-modifier-border)",
			Radius:     "4px",
		},
	}
}
