package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "30", Dark: "43"}   // teal
	muted  = lipgloss.AdaptiveColor{Light: "240", Dark: "245"} // gray
	danger = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}     // red
)

var (
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	activeNav    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent)
	inactiveNav  = lipgloss.NewStyle().Foreground(muted)
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	badgeStyle   = lipgloss.NewStyle().Foreground(accent).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(accent)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

// inputBorder returns the frame around a form input, accented when focused.
func inputBorder(focused bool) lipgloss.Style {
	c := lipgloss.TerminalColor(muted)
	if focused {
		c = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1)
}
