// Package set implements the set command, replacing the tag or icon of
// an existing pair in place.
package set

import (
	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// SetOptions holds options for the set command
type SetOptions struct {
	VaultRoot string
	FS        types.FS

	// Index is one-based, as shown by list.
	Index int
	// Tag replaces the pair's tag when non-empty.
	Tag string
	// Icon replaces the pair's icon when non-empty.
	Icon string
}

// Set updates the pair at the given position and saves. At least one of
// Tag or Icon must be given.
func Set(opts SetOptions) (*types.SetResult, error) {
	logger := logging.GetLogger("commands.set")

	if opts.Tag == "" && opts.Icon == "" {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to change, give a tag or an icon")
	}

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

	index := opts.Index - 1
	before, err := settings.At(index)
	if err != nil {
		return nil, err
	}

	after := before
	if opts.Tag != "" {
		after.Tag = opts.Tag
	}
	if opts.Icon != "" {
		after.Icon = opts.Icon
	}

	if err := settings.Replace(index, after); err != nil {
		return nil, err
	}

	if err := st.Save(settings); err != nil {
		return nil, err
	}

	logger.Info().
		Int("index", opts.Index).
		Str("tag", after.Tag).
		Str("icon", after.Icon).
		Msg("updated pair")

	return &types.SetResult{
		Index:  opts.Index,
		Before: before,
		After:  after,
	}, nil
}
