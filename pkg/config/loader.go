package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/paths"
)

// EnvPrefix is the prefix of environment variables that override
// configuration keys.
const EnvPrefix = "TAGICONS_"

// Load reads the layered configuration for the given vault.
func Load(p paths.Paths) (*Config, error) {
	return LoadFromFiles(p.UserConfigPath(), p.VaultConfigPath())
}

// LoadFromFiles reads the layered configuration from explicit file
// locations. Missing files are skipped, unreadable or malformed files
// are errors.
func LoadFromFiles(userConfigPath, vaultConfigPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User config, 3. vault config
	for _, path := range []string{userConfigPath, vaultConfigPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config from %s", path)
		}
	}

	// 4. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
