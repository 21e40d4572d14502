// Package status implements the status command, reporting the vault,
// the settings file, and whether the snippet matches current settings.
package status

import (
	"bytes"
	"os"

	"github.com/arthur-debert/tagicons/pkg/config"
	"github.com/arthur-debert/tagicons/pkg/css"
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	VaultRoot string
	FS        types.FS
	Config    *config.Config
}

// Status inspects the vault without changing anything. The snippet is
// fresh when its content equals the generator output for the current
// settings, stale when it differs or cannot be compared, and missing
// when the file does not exist.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	logger := logging.GetLogger("commands.status")

	p, err := paths.New(opts.VaultRoot)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg, err = config.Load(p)
		if err != nil {
			return nil, err
		}
	}

	st := store.New(fs, p.SettingsPath())
	settingsExists, err := st.Exists()
	if err != nil {
		return nil, err
	}

	settings, err := st.Load()
	if err != nil {
		return nil, err
	}

	result := &types.StatusResult{
		VaultRoot:      p.VaultRoot(),
		UsedFallback:   p.UsedFallback(),
		SettingsPath:   st.Path(),
		SettingsExists: settingsExists,
		SnippetPath:    p.SnippetPath(cfg.Snippet.File),
		PairCount:      settings.Len(),
	}

	result.Snippet = snippetState(fs, result.SnippetPath, settings, cfg)

	logger.Debug().
		Str("snippet", string(result.Snippet)).
		Int("pairs", result.PairCount).
		Msg("status collected")

	return result, nil
}

func snippetState(fs types.FS, snippetPath string, settings *types.Settings, cfg *config.Config) types.SnippetState {
	current, err := fs.ReadFile(snippetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return types.SnippetMissing
		}
		return types.SnippetStale
	}

	expected, err := css.GenerateWithOptions(settings.TagIconPairs, css.Options{
		Badge: css.Badge{
			Background: cfg.Badge.Background,
			Border:     cfg.Badge.Border,
			Radius:     cfg.Badge.Radius,
		},
	})
	if err != nil {
		// Settings hold pairs the generator rejects, so the file on
		// disk cannot match them.
		return types.SnippetStale
	}

	if bytes.Equal(current, []byte(expected)) {
		return types.SnippetFresh
	}
	return types.SnippetStale
}
