// Package add implements the add command, appending a tag icon pair to
// the settings.
package add

import (
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// AddOptions holds options for the add command
type AddOptions struct {
	// VaultRoot overrides vault discovery when set.
	VaultRoot string
	// FS is the filesystem to use. Defaults to the real filesystem.
	FS types.FS

	Tag  string
	Icon string
}

// Add validates the pair, appends it to the settings, and saves.
// A duplicate tag is allowed but flagged in the result so callers can
// warn: in the stylesheet the later icon rule overrides the earlier.
func Add(opts AddOptions) (*types.AddResult, error) {
	logger := logging.GetLogger("commands.add")

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

	pair := types.TagIconPair{Tag: opts.Tag, Icon: opts.Icon}
	duplicate := settings.HasTag(opts.Tag)

	if err := settings.Append(pair); err != nil {
		return nil, err
	}

	if err := st.Save(settings); err != nil {
		return nil, err
	}

	if duplicate {
		logger.Warn().Str("tag", opts.Tag).Msg("tag is already mapped, the later icon rule overrides the earlier")
	}
	logger.Info().
		Str("tag", opts.Tag).
		Str("icon", opts.Icon).
		Int("count", settings.Len()).
		Msg("added pair")

	return &types.AddResult{
		Pair:         pair,
		Index:        settings.Len(),
		Count:        settings.Len(),
		DuplicateTag: duplicate,
	}, nil
}
