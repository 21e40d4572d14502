package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/exchange"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "export <file>",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := exchange.Export(exchange.ExportOptions{
				VaultRoot: p.VaultRoot(),
				Path:      args[0],
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				return r.RenderMessage(fmt.Sprintf(MsgExportedFormat, result.PairCount, result.Path))
			})
		},
	}
}
