package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// List styles
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Tag and path styles
	TagStyle = lipgloss.NewStyle().
			Foreground(TagColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Operation indicator styles
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
	PendingIndicator = MutedStyle.Render("○")
)

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
