package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

//go:embed embedded/user-defaults.toml
var userDefaultConfig []byte

// GetUserDefaultsContent returns the annotated defaults used as the
// template for generated config files.
func GetUserDefaultsContent() string {
	return string(userDefaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
