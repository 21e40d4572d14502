// Package remove implements the remove command, dropping a pair by its
// one-based position.
package remove

import (
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// RemoveOptions holds options for the remove command
type RemoveOptions struct {
	VaultRoot string
	FS        types.FS

	// Index is one-based, as shown by list.
	Index int
}

// Remove drops the pair at the given position and saves.
func Remove(opts RemoveOptions) (*types.RemoveResult, error) {
	logger := logging.GetLogger("commands.remove")

	p, err := paths.New(opts.VaultRoot)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	st := store.New(fs, p.SettingsPath())
	settings, err := st.Load()
	if err != nil {
		return nil, err
	}

	removed, err := settings.RemoveAt(opts.Index - 1)
	if err != nil {
		return nil, err
	}

	if err := st.Save(settings); err != nil {
		return nil, err
	}

	logger.Info().
		Str("tag", removed.Tag).
		Int("index", opts.Index).
		Int("count", settings.Len()).
		Msg("removed pair")

	return &types.RemoveResult{
		Removed: removed,
		Count:   settings.Len(),
	}, nil
}
