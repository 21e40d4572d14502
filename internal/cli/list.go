package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/list"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := list.List(list.ListOptions{
				VaultRoot: p.VaultRoot(),
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				return r.RenderPairList(result)
			})
		},
	}
}
