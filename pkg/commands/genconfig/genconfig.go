// Package genconfig implements the gen-config command.
package genconfig

import (
	"os"

	"github.com/arthur-debert/tagicons/pkg/config"
	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	VaultRoot string
	FS        types.FS

	// Write stores the annotated config in the vault root instead of
	// returning it for display.
	Write bool
}

// GenConfig outputs or writes the annotated default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("outputting config template")
		return result, nil
	}

	p, err := paths.New(opts.VaultRoot)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	targetPath := p.VaultConfigPath()

	// Never clobber an existing config
	if _, err := fs.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("config file already exists, skipping")
		return result, nil
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", targetPath)
	}

	if err := fs.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)

	return result, nil
}
