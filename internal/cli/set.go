package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/set"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set <index>",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			tag, _ := cmd.Flags().GetString("tag")
			icon, _ := cmd.Flags().GetString("icon")

			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := set.Set(set.SetOptions{
				VaultRoot: p.VaultRoot(),
				Index:     index,
				Tag:       tag,
				Icon:      icon,
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				return r.RenderMessage(fmt.Sprintf(MsgSetFormat,
					result.Index, result.After.Tag, result.After.Icon))
			})
		},
	}

	cmd.Flags().String("tag", "", MsgFlagTag)
	cmd.Flags().String("icon", "", MsgFlagIcon)

	return cmd
}
