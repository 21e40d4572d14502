package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/tagicons/pkg/types"
)

// Renderer defines the interface for rendering various output types
type Renderer interface {
	RenderPairList(list *types.ListResult) string
	RenderStatus(status *types.StatusResult) string
	RenderError(err error) string
	RenderMessage(msg string) string
}

// NewRenderer returns the renderer matching the given format. FormatAuto
// resolves against stdout. JSON output is handled separately by
// JSONRenderer, so FormatJSON falls back to plain text here.
func NewRenderer(format Format) Renderer {
	if format == FormatAuto {
		format = DetectFormat(os.Stdout)
	}
	if format == FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderPairList renders the ordered tag icon pairs
func (r *TerminalRenderer) RenderPairList(list *types.ListResult) string {
	if len(list.Pairs) == 0 {
		return MutedStyle.Render("No tag icons configured")
	}

	var result strings.Builder
	result.WriteString(SubtitleStyle.Render("Tag icons") + "\n\n")

	for _, pair := range list.Pairs {
		line := fmt.Sprintf("%s %s  %s",
			MutedStyle.Render(fmt.Sprintf("%2d.", pair.Index)),
			pair.Icon,
			TagStyle.Render(pair.Tag))
		result.WriteString(line + "\n")
	}

	result.WriteString("\n")
	result.WriteString(MutedStyle.Render("settings: ") + PathStyle.Render(list.SettingsPath))

	return result.String()
}

// RenderStatus renders the vault, settings, and snippet state
func (r *TerminalRenderer) RenderStatus(status *types.StatusResult) string {
	var result strings.Builder

	vaultLine := fmt.Sprintf("%s vault     %s", InfoIndicator, PathStyle.Render(status.VaultRoot))
	if status.UsedFallback {
		vaultLine = fmt.Sprintf("%s vault     %s %s",
			WarningIndicator,
			PathStyle.Render(status.VaultRoot),
			WarningStyle.Render("(no .obsidian found, using working directory)"))
	}
	result.WriteString(vaultLine + "\n")

	if status.SettingsExists {
		result.WriteString(fmt.Sprintf("%s settings  %s (%d pairs)\n",
			SuccessIndicator, PathStyle.Render(status.SettingsPath), status.PairCount))
	} else {
		result.WriteString(fmt.Sprintf("%s settings  %s %s\n",
			PendingIndicator, PathStyle.Render(status.SettingsPath), MutedStyle.Render("(not created)")))
	}

	var snippetLine string
	switch status.Snippet {
	case types.SnippetFresh:
		snippetLine = fmt.Sprintf("%s snippet   %s %s",
			SuccessIndicator, PathStyle.Render(status.SnippetPath), SuccessStyle.Render("up to date"))
	case types.SnippetStale:
		snippetLine = fmt.Sprintf("%s snippet   %s %s",
			WarningIndicator, PathStyle.Render(status.SnippetPath), WarningStyle.Render("out of date, run generate"))
	default:
		snippetLine = fmt.Sprintf("%s snippet   %s %s",
			PendingIndicator, PathStyle.Render(status.SnippetPath), MutedStyle.Render("not generated"))
	}
	result.WriteString(snippetLine)

	return result.String()
}

// RenderError renders an error message. Structured errors already
// carry their code in the message.
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderMessage renders an informational message
func (r *TerminalRenderer) RenderMessage(msg string) string {
	return fmt.Sprintf("%s %s", SuccessIndicator, msg)
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderPairList renders a plain pair list
func (r *PlainRenderer) RenderPairList(list *types.ListResult) string {
	if len(list.Pairs) == 0 {
		return "No tag icons configured"
	}

	var result strings.Builder
	for _, pair := range list.Pairs {
		result.WriteString(fmt.Sprintf("%d. %s %s\n", pair.Index, pair.Tag, pair.Icon))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderStatus renders plain status output
func (r *PlainRenderer) RenderStatus(status *types.StatusResult) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("vault: %s", status.VaultRoot))
	if status.UsedFallback {
		result.WriteString(" (fallback)")
	}
	result.WriteString("\n")

	result.WriteString(fmt.Sprintf("settings: %s exists=%t pairs=%d\n",
		status.SettingsPath, status.SettingsExists, status.PairCount))
	result.WriteString(fmt.Sprintf("snippet: %s %s", status.SnippetPath, status.Snippet))

	return result.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

// RenderMessage renders a plain message
func (r *PlainRenderer) RenderMessage(msg string) string {
	return msg
}
