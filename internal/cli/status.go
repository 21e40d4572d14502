package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/status"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Pass the raw flag so the command reports whether the
			// working directory fallback was used.
			result, err := status.Status(status.StatusOptions{
				VaultRoot: vaultFlag(cmd),
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				return r.RenderStatus(result)
			})
		},
	}
}
