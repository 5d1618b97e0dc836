package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// scrimStyle dims the backdrop. While a dialog fades in or out the backdrop
// is only faint.
func scrimStyle(theme components.Theme, p phase) lipgloss.Style {
	style := lipgloss.NewStyle().Faint(true)
	if p == phaseShown {
		style = style.Foreground(theme.Color(components.RoleScrim))
	}
	return style
}

// keyboardStyle frames the key hint panel shown while typing.
func keyboardStyle(theme components.Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.Color(components.RoleSub)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(theme.Color(components.RoleDivider))
}
