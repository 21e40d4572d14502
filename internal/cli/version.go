package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgBuiltFormat, version.Date)
			}
		},
	}
}
