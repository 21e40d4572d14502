package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/add"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <tag> <icon>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := add.Add(add.AddOptions{
				VaultRoot: p.VaultRoot(),
				Tag:       args[0],
				Icon:      args[1],
			})
			if err != nil {
				return err
			}

			if result.DuplicateTag {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgDuplicateWarning, result.Pair.Tag)
			}

			return emit(cmd, result, func(r style.Renderer) string {
				return r.RenderMessage(fmt.Sprintf(MsgAddedFormat,
					result.Pair.Tag, result.Pair.Icon, result.Index))
			})
		},
	}
}
