package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Text renders styled, word-wrapped text. When the context carries a width
// the text fills it and is aligned within it.
type Text struct {
	BaseComponent
	content string
	align   lipgloss.Position
}

// NewText creates a left-aligned text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		align:         lipgloss.Left,
	}
}

// TitleText is centred title text.
func TitleText(content string) *Text {
	return NewText(content).WithAlign(lipgloss.Center).WithAppliers(TitleStyle(), Background(RoleCard))
}

// MessageText is centred message text.
func MessageText(content string) *Text {
	return NewText(content).WithAlign(lipgloss.Center).WithAppliers(MessageStyle(), Background(RoleCard))
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme).Align(t.align)
	if width := ctx.Constraints.Width(); width > 0 {
		style = style.Width(width)
	}
	return style.Render(t.content)
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// WithAlign sets the horizontal alignment.
func (t *Text) WithAlign(align lipgloss.Position) *Text {
	t.align = align
	return t
}

// WithAppliers appends theme-aware style functions.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// WithStyle sets the raw lipgloss style.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}
