// Package styles holds the terminal colours used for diagnostics. Output that
// other programs may read, such as the rendered factor line, is never styled.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on black backgrounds
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple (violet-400)
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	ErrorColor   = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray

	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)

	// Heading is used for section titles in the config subcommands.
	Heading = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
)
