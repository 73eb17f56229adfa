package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayBackground = lipgloss.Color("236")

func box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(overlayBackground).
		Padding(1, 2).
		Width(60)
}

func hint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}

// Overlay centres a dialog on a width x height screen.
func Overlay(d Dialog, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		d.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(overlayBackground),
	)
}
