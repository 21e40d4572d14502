// Package initialize implements the init command, creating an empty
// settings file in the vault.
package initialize

import (
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// InitOptions holds options for the init command
type InitOptions struct {
	VaultRoot string
	FS        types.FS

	// Force recreates the settings file even when one exists, resetting
	// it to an empty pair list.
	Force bool
}

// Init creates the settings file with an empty pair list. An existing
// file is left alone unless Force is set.
func Init(opts InitOptions) (*types.InitResult, error) {
	logger := logging.GetLogger("commands.init")

	p, err := paths.New(opts.VaultRoot)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	st := store.New(fs, p.SettingsPath())
	exists, err := st.Exists()
	if err != nil {
		return nil, err
	}

	if exists && !opts.Force {
		logger.Debug().Str("path", st.Path()).Msg("settings file already exists")
		return &types.InitResult{
			SettingsPath: st.Path(),
			Created:      false,
		}, nil
	}

	if err := st.Save(types.DefaultSettings()); err != nil {
		return nil, err
	}

	logger.Info().Str("path", st.Path()).Bool("force", opts.Force).Msg("created settings file")

	return &types.InitResult{
		SettingsPath: st.Path(),
		Created:      true,
	}, nil
}
