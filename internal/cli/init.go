package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/initialize"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := initialize.Init(initialize.InitOptions{
				VaultRoot: p.VaultRoot(),
				Force:     force,
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				if result.Created {
					return r.RenderMessage(fmt.Sprintf(MsgInitCreatedFormat, result.SettingsPath))
				}
				return r.RenderMessage(fmt.Sprintf(MsgInitExistsFormat, result.SettingsPath))
			})
		},
	}

	cmd.Flags().Bool("force", false, MsgFlagForce)

	return cmd
}
