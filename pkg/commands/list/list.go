// Package list implements the list command.
package list

import (
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// ListOptions holds options for the list command
type ListOptions struct {
	VaultRoot string
	FS        types.FS
}

// List returns the ordered pairs with their one-based positions.
// Malformed pairs from a hand-edited settings file are listed too, so
// the user can see what to fix or remove.
func List(opts ListOptions) (*types.ListResult, error) {
	logger := logging.GetLogger("commands.list")

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

	entries := make([]types.PairEntry, 0, settings.Len())
	for i, pair := range settings.TagIconPairs {
		entries = append(entries, types.PairEntry{
			Index: i + 1,
			Tag:   pair.Tag,
			Icon:  pair.Icon,
		})
	}

	logger.Debug().Int("count", len(entries)).Msg("listed pairs")

	return &types.ListResult{
		VaultRoot:    p.VaultRoot(),
		SettingsPath: st.Path(),
		Pairs:        entries,
	}, nil
}
