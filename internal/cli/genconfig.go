package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/genconfig"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				VaultRoot: p.VaultRoot(),
				Write:     write,
			})
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return nil
			}

			return emit(cmd, result, func(r style.Renderer) string {
				if len(result.FilesWritten) == 0 {
					return r.RenderMessage(MsgConfigSkipped)
				}
				return r.RenderMessage(fmt.Sprintf(MsgConfigWroteFormat, result.FilesWritten[0]))
			})
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}
