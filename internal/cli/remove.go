package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/remove"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Example: MsgRemoveExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := remove.Remove(remove.RemoveOptions{
				VaultRoot: p.VaultRoot(),
				Index:     index,
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				return r.RenderMessage(fmt.Sprintf(MsgRemovedFormat,
					result.Removed.Tag, result.Removed.Icon, result.Count))
			})
		},
	}
}
