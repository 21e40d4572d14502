package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/move"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "move <index> <up|down>",
		Short:     MsgMoveShort,
		Long:      MsgMoveLong,
		Example:   MsgMoveExample,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"up", "down"},
		GroupID:   "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			direction, err := move.ParseDirection(args[1])
			if err != nil {
				return err
			}

			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := move.Move(move.MoveOptions{
				VaultRoot: p.VaultRoot(),
				Index:     index,
				Direction: direction,
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				return r.RenderMessage(fmt.Sprintf(MsgMovedFormat,
					result.Pair.Tag, result.Pair.Icon, result.From, result.To))
			})
		},
	}
}
