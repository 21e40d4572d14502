package testutil

import (
	"github.com/spf13/afero"

	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// NewTestFS creates an in-memory filesystem for testing
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}
