package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ButtonVariant selects a button's label colour and weight.
type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantCancel
	ButtonVariantDestructive
	ButtonVariantPreferred
)

// Button is a one-row, full-width action label.
type Button struct {
	BaseComponent
	label       string
	variant     ButtonVariant
	hue         Hue
	highlighted bool
}

// NewButton creates a default button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label centred in the available width,
// truncating it with an ellipsis when it does not fit.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.computeStyle(ctx.Theme).Align(lipgloss.Center)
	label := b.label
	if width := ctx.Constraints.Width(); width > 0 {
		style = style.Width(width)
		if ansi.StringWidth(label) > width {
			label = ansi.Truncate(label, width, "…")
		}
	}
	return style.Render(label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).Inherit(theme.Typography.Button)

	switch b.variant {
	case ButtonVariantCancel:
		style = style.Foreground(theme.Color(RoleCancel))
	case ButtonVariantDestructive:
		style = style.Foreground(theme.Color(RoleDestructive))
	case ButtonVariantPreferred:
		style = style.Foreground(theme.Color(RoleDefault)).Inherit(theme.Typography.Preferred)
	default:
		style = style.Foreground(theme.Color(RoleDefault))
	}
	if b.hue != HueNone {
		style = style.Foreground(theme.Hue(b.hue))
	}

	if b.highlighted {
		return style.Background(theme.Color(RoleHighlighted))
	}
	return style.Background(theme.Color(RoleButton))
}

// WithVariant sets the variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithHue overrides the label colour.
func (b *Button) WithHue(h Hue) *Button {
	b.hue = h
	return b
}

// WithHighlighted toggles the pressed/focused background.
func (b *Button) WithHighlighted(highlighted bool) *Button {
	b.highlighted = highlighted
	return b
}

// WithAppliers appends theme-aware style functions.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// Hue returns the label colour override.
func (b *Button) Hue() Hue {
	return b.hue
}

// IsHighlighted reports whether the highlighted background is used.
func (b *Button) IsHighlighted() bool {
	return b.highlighted
}
