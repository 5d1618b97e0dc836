package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/geometry"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// View renders the backdrop, the scrim, the dialog and the keyboard panel.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	canvas := components.NewCanvas(m.width, m.height)
	c := m.stage.current
	if c == nil {
		canvas.Backdrop(m.backdrop, lipgloss.NewStyle())
		return canvas.String()
	}

	canvas.Backdrop(m.backdrop, scrimStyle(m.theme, m.stage.phase))
	surface := m.render()
	shift := c.KeyboardOffset()
	for _, card := range surface.Cards {
		r := surface.ToScreen(card.Rect, shift)
		canvas.Draw(r.X, r.Y, card.Content)
	}
	if kb, ok := m.keyboardRect(); ok {
		canvas.Draw(kb.X, kb.Y, m.keyboardView())
	}
	return canvas.String()
}

// render lays the current dialog out for the screen, refreshing the
// geometry its controller hit-tests against.
func (m Model) render() dialog.Surface {
	c := m.stage.current
	if c == nil {
		return dialog.Surface{}
	}
	ctx := components.NewContext(m.theme)
	return c.Render(ctx, geometry.Size{W: m.width, H: m.height}, m.highlight())
}

func (m Model) keyboardView() string {
	return keyboardStyle(m.theme, m.width).Render(m.help.View(m.keys))
}

// keyboardRect is the screen frame of the keyboard panel. ok is false while
// no input field has focus.
func (m Model) keyboardRect() (geometry.Rect, bool) {
	if m.active() == nil || m.focusedInput() == nil || m.width <= 0 || m.height <= 0 {
		return geometry.Rect{}, false
	}
	h := lipgloss.Height(m.keyboardView())
	return geometry.R(0, m.height-h, m.width, h), true
}
