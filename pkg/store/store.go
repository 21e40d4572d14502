// Package store persists the tag icon settings blob. The blob is a
// single JSON document inside the vault's .obsidian directory and is
// treated as hand-editable: loading is lenient about content (missing
// file and missing keys degrade to defaults) while strict about syntax.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// Store reads and writes the settings blob.
type Store interface {
	// Load returns the persisted settings. A missing file yields the
	// default settings rather than an error.
	Load() (*types.Settings, error)

	// Save writes the settings, creating parent directories as needed.
	Save(settings *types.Settings) error

	// Path returns the absolute path of the settings file.
	Path() string

	// Exists reports whether the settings file is present on disk.
	Exists() (bool, error)
}

type jsonStore struct {
	fs     types.FS
	path   string
	logger zerolog.Logger
}

// New creates a Store persisting to the given path through the given
// filesystem.
func New(fs types.FS, settingsPath string) Store {
	return &jsonStore{
		fs:     fs,
		path:   settingsPath,
		logger: logging.GetLogger("store"),
	}
}

func (s *jsonStore) Load() (*types.Settings, error) {
	exists, err := s.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.Debug().Str("path", s.path).Msg("no settings file, using defaults")
		return types.DefaultSettings(), nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsLoad,
			"failed to read settings file %s", s.path)
	}

	// Unmarshal over the defaults so absent keys keep their default
	// values instead of zeroing out.
	settings := types.DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsParse,
			"settings file %s is not valid JSON", s.path).
			WithDetail("path", s.path)
	}
	if settings.TagIconPairs == nil {
		settings.TagIconPairs = []types.TagIconPair{}
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("pairs", settings.Len()).
		Msg("loaded settings")
	return settings, nil
}

func (s *jsonStore) Save(settings *types.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create directory %s", dir)
	}

	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsSave,
			"failed to write settings file %s", s.path)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("pairs", settings.Len()).
		Msg("saved settings")
	return nil
}

func (s *jsonStore) Path() string {
	return s.path
}

func (s *jsonStore) Exists() (bool, error) {
	_, err := s.fs.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to stat settings file %s", s.path)
	}
	return true, nil
}
