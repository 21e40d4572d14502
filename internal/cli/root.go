// Package cli wires the command packages to a cobra command tree.
// Commands parse arguments and render results; the work itself lives
// in pkg/commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagicons/internal/version"
	"github.com/arthur-debert/tagicons/pkg/cobrax/topics"
	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/logging"
	"github.com/arthur-debert/tagicons/pkg/paths"
	"github.com/arthur-debert/tagicons/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "tagicons",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given. Show help but return an error to
			// indicate incorrect usage.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String("vault", "", MsgFlagVault)
	rootCmd.PersistentFlags().Bool("dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().String("format", "auto", MsgFlagFormat)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIG:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newTopicsCmd())

	// Initialize topic-based help system
	// Try to find help topics relative to the executable location
	exe, err := os.Executable()
	if err == nil {
		// Look for help topics in various locations
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "docs", "help"),             // Installed
			filepath.Join(filepath.Dir(exe), "..", "..", "docs", "help"), // Development
			"docs/help", // Current directory fallback
		}

		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				opts := topics.Options{
					Extensions: []string{".txt", ".md"},
					// Always use Glamour renderer for markdown files
					Renderer: topics.NewGlamourRenderer(),
				}

				if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

// initPaths resolves the vault root, preferring the --vault flag, and
// warns on stderr when the working directory fallback is in use.
func initPaths(cmd *cobra.Command) (paths.Paths, error) {
	root, _ := cmd.Root().PersistentFlags().GetString("vault")

	p, err := paths.New(root)
	if err != nil {
		return nil, err
	}

	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning+"\n\n", p.VaultRoot())
	}

	return p, nil
}

// vaultFlag reads the raw --vault flag without resolving it.
func vaultFlag(cmd *cobra.Command) string {
	root, _ := cmd.Root().PersistentFlags().GetString("vault")
	return root
}

// outputFormat parses the --format flag.
func outputFormat(cmd *cobra.Command) (style.Format, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	return style.ParseFormat(name)
}

// emit renders a command result to stdout. JSON format encodes the
// result struct; the other formats use the render callback.
func emit(cmd *cobra.Command, result interface{}, render func(style.Renderer) string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	if format == style.FormatJSON {
		return style.NewJSONRenderer(cmd.OutOrStdout()).RenderResult(result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render(style.NewRenderer(format)))
	return nil
}

// parseIndex parses a one-based position argument.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidInput, "index must be a number, got %q", arg)
	}
	return index, nil
}
