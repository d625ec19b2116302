package components

import "github.com/charmbracelet/lipgloss"

// Styles holds the Lipgloss styles shared by the preview screens.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Warning     lipgloss.Style
	Panel       lipgloss.Style
	Canvas      lipgloss.Style
	Footer      lipgloss.Style
	AccentColor lipgloss.AdaptiveColor
	MutedColor  lipgloss.AdaptiveColor
}

// DefaultStyles returns the arcspin palette. Uses AdaptiveColor to work in
// both light and dark terminals.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#7B2FBE", Dark: "#B476F0"}
	cyan := lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	warn := lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Label: lipgloss.NewStyle().
			Foreground(muted).
			Width(12),

		Value: lipgloss.NewStyle().
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(warn),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Canvas: lipgloss.NewStyle().
			Padding(0, 2),

		Footer: lipgloss.NewStyle().
			Foreground(muted),

		AccentColor: accent,
		MutedColor:  muted,
	}
}
