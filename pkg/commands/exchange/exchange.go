// Package exchange implements the export and import commands, moving
// the pair list in and out of the vault as JSON, YAML, or TOML. The
// format follows the file extension.
package exchange

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// document is the exchange file layout, shared by all formats.
type document struct {
	TagIconPairs []types.TagIconPair `json:"tagIconPairs" yaml:"tagIconPairs" toml:"tagIconPairs"`
}

// FormatFromPath maps a file extension to an exchange format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unsupported exchange format for %q, use .json, .yaml, or .toml", filepath.Base(path))
	}
}

func marshal(format string, doc document) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(doc)
	default:
		return toml.Marshal(doc)
	}
}

func unmarshal(format string, data []byte, doc *document) error {
	switch format {
	case "json":
		return json.Unmarshal(data, doc)
	case "yaml":
		return yaml.Unmarshal(data, doc)
	default:
		return toml.Unmarshal(data, doc)
	}
}

// ExportOptions holds options for the export command
type ExportOptions struct {
	VaultRoot string
	FS        types.FS

	// Path is the destination file. Its extension picks the format.
	Path string
}

// Export writes the pair list to a file outside the vault settings.
func Export(opts ExportOptions) (*types.ExportResult, error) {
	logger := logging.GetLogger("commands.export")

	format, err := FormatFromPath(opts.Path)
	if err != nil {
		return nil, err
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

	data, err := marshal(format, document{TagIconPairs: settings.TagIconPairs})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode pairs")
	}

	dir := filepath.Dir(opts.Path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	if err := fs.WriteFile(opts.Path, data, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", opts.Path)
	}

	logger.Info().
		Str("path", opts.Path).
		Str("format", format).
		Int("pairs", settings.Len()).
		Msg("exported pairs")

	return &types.ExportResult{
		Path:      opts.Path,
		Format:    format,
		PairCount: settings.Len(),
	}, nil
}

// ImportOptions holds options for the import command
type ImportOptions struct {
	VaultRoot string
	FS        types.FS

	// Path is the source file. Its extension picks the format.
	Path string
	// Merge appends pairs whose tags are not mapped yet instead of
	// replacing the whole list.
	Merge bool
}

// Import reads pairs from a file and stores them. The whole file is
// validated before anything is written: one bad pair rejects the
// import.
func Import(opts ImportOptions) (*types.ImportResult, error) {
	logger := logging.GetLogger("commands.import")

	format, err := FormatFromPath(opts.Path)
	if err != nil {
		return nil, err
	}

	p, err := paths.New(opts.VaultRoot)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	data, err := fs.ReadFile(opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "import file %s does not exist", opts.Path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", opts.Path)
	}

	var doc document
	if err := unmarshal(format, data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"%s could not be parsed as %s", opts.Path, format)
	}

	for i, pair := range doc.TagIconPairs {
		if err := pair.Validate(); err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err),
				"pair %d in %s is invalid, nothing imported", i+1, opts.Path)
		}
	}

	st := store.New(fs, p.SettingsPath())
	settings, err := st.Load()
	if err != nil {
		return nil, err
	}

	imported := 0
	skipped := 0
	if opts.Merge {
		for _, pair := range doc.TagIconPairs {
			if settings.HasTag(pair.Tag) {
				skipped++
				continue
			}
			if err := settings.Append(pair); err != nil {
				return nil, err
			}
			imported++
		}
	} else {
		settings.TagIconPairs = append([]types.TagIconPair{}, doc.TagIconPairs...)
		imported = len(doc.TagIconPairs)
	}

	if err := st.Save(settings); err != nil {
		return nil, err
	}

	logger.Info().
		Str("path", opts.Path).
		Str("format", format).
		Int("imported", imported).
		Int("skipped", skipped).
		Bool("merge", opts.Merge).
		Msg("imported pairs")

	return &types.ImportResult{
		Path:     opts.Path,
		Format:   format,
		Imported: imported,
		Skipped:  skipped,
		Total:    len(doc.TagIconPairs),
		Merged:   opts.Merge,
	}, nil
}
