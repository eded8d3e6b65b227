package ui

import "github.com/charmbracelet/lipgloss"

// ANSI 0-15 only, so the palette follows the user's terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	ItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	SelectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
)

// Rule underlines a title with a box-drawing line of the same display width.
func Rule(title string) string {
	w := lipgloss.Width(title)
	if w == 0 {
		return ""
	}
	line := make([]rune, w)
	for i := range line {
		line[i] = '─'
	}
	return string(line)
}
