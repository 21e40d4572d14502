package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Show icons instead of tag text in your vault"
	MsgAddShort        = "Add a tag to icon mapping"
	MsgRemoveShort     = "Remove a mapping by position"
	MsgMoveShort       = "Move a mapping up or down"
	MsgSetShort        = "Change the tag or icon of a mapping"
	MsgListShort       = "List all tag icon mappings"
	MsgListLong        = "List displays the ordered tag icon mappings stored in the vault settings."
	MsgGenerateShort   = "Write the CSS snippet into the vault"
	MsgPreviewShort    = "Print the CSS snippet without writing it"
	MsgStatusShort     = "Show vault, settings, and snippet state"
	MsgInitShort       = "Create an empty settings file in the vault"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgExportShort     = "Export mappings to a JSON, YAML, or TOML file"
	MsgImportShort     = "Import mappings from a JSON, YAML, or TOML file"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Result messages
	MsgAddedFormat       = "Added %s %s at position %d"
	MsgRemovedFormat     = "Removed %s %s (%d pairs left)"
	MsgMovedFormat       = "Moved %s %s from %d to %d"
	MsgSetFormat         = "Pair %d is now %s %s"
	MsgWroteFormat       = "Wrote %s (%d pairs, %d bytes)"
	MsgWouldWriteFormat  = "Would write %s (%d pairs, %d bytes)"
	MsgDryRunNotice      = "DRY RUN MODE - No changes were made"
	MsgInitCreatedFormat = "Created settings file at %s"
	MsgInitExistsFormat  = "Settings file already exists at %s"
	MsgConfigWroteFormat = "Wrote config file to %s"
	MsgConfigSkipped     = "Config file already exists, skipping"
	MsgExportedFormat    = "Exported %d pairs to %s"
	MsgImportedFormat    = "Imported %d pairs from %s"
	MsgImportSkipSuffix  = " (%d already mapped, skipped)"
	MsgDuplicateWarning  = "Warning: %s is already mapped, the later icon rule overrides the earlier\n"

	// Version output
	MsgVersionFormat = "tagicons version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagVault   = "Vault root directory (defaults to TAGICONS_VAULT or an upward search)"
	MsgFlagDryRun  = "Preview changes without writing them"
	MsgFlagFormat  = "Output format (auto, term, text, json)"
	MsgFlagForce   = "Recreate the settings file even if one exists"
	MsgFlagWrite   = "Write config to the vault root instead of stdout"
	MsgFlagMerge   = "Append pairs whose tags are not mapped yet instead of replacing the list"
	MsgFlagTag     = "New tag (category/name)"
	MsgFlagIcon    = "New icon"
)

// Command long texts and examples
const (
	MsgAddLong = `Add appends a tag to icon mapping to the end of the list and stores it
in the vault settings. The tag must look like category/name. Run
'tagicons generate' afterwards to refresh the snippet.`

	MsgAddExample = `  # Map the task/inbox tag to an inbox tray
  tagicons add task/inbox 📥

  # Icons can be any text, including CSS escape sequences
  tagicons add status/done "\2713"`

	MsgRemoveLong = `Remove deletes the mapping at the given position. Positions are
one-based, as printed by 'tagicons list'.`

	MsgRemoveExample = `  # Remove the second mapping
  tagicons remove 2`

	MsgMoveLong = `Move shifts the mapping at the given position one step up or down.
Order matters when two mappings target the same tag: the later icon
rule wins in the generated stylesheet.`

	MsgMoveExample = `  # Move the third mapping one step up
  tagicons move 3 up

  # Move the first mapping one step down
  tagicons move 1 down`

	MsgSetExample = `  # Change the icon of the second mapping
  tagicons set 2 --icon ✅

  # Change the tag and keep the icon
  tagicons set 2 --tag status/done`

	MsgListExample = `  # List all mappings
  tagicons list

  # Machine-readable listing
  tagicons list --format json`

	MsgGenerateExample = `  # Write the snippet into <vault>/.obsidian/snippets/
  tagicons generate

  # Show what would be written
  tagicons generate --dry-run`

	MsgPreviewLong = `Preview renders the stylesheet for the current settings and prints it
to stdout instead of writing it. On a terminal the CSS is syntax
highlighted.`

	MsgStatusExample = `  # Show the vault state
  tagicons status`

	MsgInitLong = `Init creates the settings file with an empty mapping list. An existing
file is left alone unless --force is given, which resets it.`

	MsgGenConfigLong = `Output the default configuration with every value commented out, ready
for editing. With --write the file is stored as tagicons.toml in the
vault root; an existing file is never overwritten.`

	MsgGenConfigExample = `  tagicons gen-config          # Output to stdout
  tagicons gen-config -w       # Write to <vault>/tagicons.toml`

	MsgExportLong = `Export writes the mapping list to a file. The extension picks the
format: .json, .yaml, .yml, or .toml.`

	MsgExportExample = `  tagicons export pairs.json
  tagicons export backup.yaml`

	MsgImportExample = `  # Replace the list with the file contents
  tagicons import pairs.json

  # Keep existing mappings, append new tags only
  tagicons import pairs.yaml --merge`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(tagicons completion bash)

Zsh:
  $ tagicons completion zsh > "${fpath[1]}/_tagicons"

Fish:
  $ tagicons completion fish | source

PowerShell:
  PS> tagicons completion powershell | Out-String | Invoke-Expression`
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)
)
