package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/exchange"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		Example: MsgImportExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			merge, _ := cmd.Flags().GetBool("merge")

			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := exchange.Import(exchange.ImportOptions{
				VaultRoot: p.VaultRoot(),
				Path:      args[0],
				Merge:     merge,
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				msg := fmt.Sprintf(MsgImportedFormat, result.Imported, result.Path)
				if result.Skipped > 0 {
					msg += fmt.Sprintf(MsgImportSkipSuffix, result.Skipped)
				}
				return r.RenderMessage(msg)
			})
		},
	}

	cmd.Flags().Bool("merge", false, MsgFlagMerge)

	return cmd
}
