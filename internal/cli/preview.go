package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/pkg/commands/generate"
	"github.com/arthur-debert/tagicons/pkg/style"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "preview",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := generate.Generate(generate.GenerateOptions{
				VaultRoot: p.VaultRoot(),
				DryRun:    true,
			})
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == style.FormatAuto {
				format = style.DetectFormat(os.Stdout)
			}

			// Raw CSS regardless of format, highlighted on a terminal.
			css := result.CSS
			if format == style.FormatTerminal {
				css = style.HighlightCSS(css)
			}
			fmt.Fprint(cmd.OutOrStdout(), css)

			return nil
		},
	}
}
