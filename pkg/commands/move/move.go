// Package move implements the move command, shifting a pair one
// position up or down. Order matters: the stylesheet emits rules in
// list order.
package move

import (
	"strings"

	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/filesystem"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/store"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// Direction is the way a pair moves through the list.
type Direction int

const (
	// Up moves a pair toward the front of the list.
	Up Direction = iota
	// Down moves a pair toward the back of the list.
	Down
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ParseDirection parses a direction argument.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return Up, errors.Newf(errors.ErrInvalidInput, "direction must be up or down, got %q", s)
	}
}

// MoveOptions holds options for the move command
type MoveOptions struct {
	VaultRoot string
	FS        types.FS

	// Index is one-based, as shown by list.
	Index     int
	Direction Direction
}

// Move swaps the pair at the given position with its neighbor and saves.
func Move(opts MoveOptions) (*types.MoveResult, error) {
	logger := logging.GetLogger("commands.move")

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
	if opts.Direction == Up {
		err = settings.MoveUp(index)
	} else {
		err = settings.MoveDown(index)
	}
	if err != nil {
		return nil, err
	}

	to := opts.Index - 1
	if opts.Direction == Down {
		to = opts.Index + 1
	}

	pair, err := settings.At(to - 1)
	if err != nil {
		return nil, err
	}

	if err := st.Save(settings); err != nil {
		return nil, err
	}

	logger.Info().
		Str("tag", pair.Tag).
		Int("from", opts.Index).
		Int("to", to).
		Str("direction", opts.Direction.String()).
		Msg("moved pair")

	return &types.MoveResult{
		Pair: pair,
		From: opts.Index,
		To:   to,
	}, nil
}
