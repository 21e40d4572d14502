// Package generate implements the generate command: render the
// stylesheet from the current settings and write it into the vault's
// snippets directory. This is the only command that touches the
// snippet file.
package generate

import (
	"path/filepath"

	"github.com/arthur-debert/tagicons/pkg/config"
	"github.com/arthur-debert/tagicons/pkg/css"
	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// GenerateOptions holds options for the generate command
type GenerateOptions struct {
	VaultRoot string
	FS        types.FS
	// Config overrides the loaded configuration when set.
	Config *config.Config
	// DryRun renders without writing the snippet file.
	DryRun bool
}

// Generate renders the stylesheet and writes it to the snippet path.
// An empty pair list writes an empty snippet, clearing previous rules.
func Generate(opts GenerateOptions) (*types.GenerateResult, error) {
	logger := logging.GetLogger("commands.generate")

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
	settings, err := st.Load()
	if err != nil {
		return nil, err
	}

	content, err := css.GenerateWithOptions(settings.TagIconPairs, css.Options{
		Badge: css.Badge{
			Background: cfg.Badge.Background,
			Border:     cfg.Badge.Border,
			Radius:     cfg.Badge.Radius,
		},
	})
	if err != nil {
		return nil, err
	}

	snippetPath := p.SnippetPath(cfg.Snippet.File)
	result := &types.GenerateResult{
		SnippetPath: snippetPath,
		PairCount:   settings.Len(),
		Size:        len(content),
		DryRun:      opts.DryRun,
		CSS:         content,
	}

	if opts.DryRun {
		logger.Info().
			Str("path", snippetPath).
			Int("pairs", settings.Len()).
			Msg("dry run, snippet not written")
		return result, nil
	}

	dir := filepath.Dir(snippetPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("failed to create snippets directory")
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create snippets directory %s", dir)
	}

	if err := fs.WriteFile(snippetPath, []byte(content), 0644); err != nil {
		logger.Error().Err(err).Str("path", snippetPath).Msg("failed to write snippet")
		return nil, errors.Wrapf(err, errors.ErrSnippetWrite,
			"failed to write snippet %s", snippetPath)
	}

	result.Written = true
	logger.Info().
		Str("path", snippetPath).
		Int("pairs", settings.Len()).
		Int("bytes", len(content)).
		Msg("wrote snippet")

	return result, nil
}
