package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/generate"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			result, err := generate.Generate(generate.GenerateOptions{
				VaultRoot: p.VaultRoot(),
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			return emit(cmd, result, func(r style.Renderer) string {
				if result.DryRun {
					return r.RenderMessage(fmt.Sprintf(MsgWouldWriteFormat,
						result.SnippetPath, result.PairCount, result.Size)) +
						"\n" + MsgDryRunNotice
				}
				return r.RenderMessage(fmt.Sprintf(MsgWroteFormat,
					result.SnippetPath, result.PairCount, result.Size))
			})
		},
	}
}
