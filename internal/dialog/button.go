package dialog

import (
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// ButtonSpec describes one action of a dialog.
type ButtonSpec struct {
	Label string
	Style ButtonStyle
	// Tag is an opaque caller-assigned value.
	Tag int
	// OnTap runs after the dialog has been dismissed.
	OnTap func(ButtonSpec)
	// Color overrides the label colour implied by Style.
	Color components.Hue
}

// NewButton is a shorthand for a ButtonSpec literal.
func NewButton(label string, style ButtonStyle, onTap func(ButtonSpec)) ButtonSpec {
	return ButtonSpec{Label: label, Style: style, OnTap: onTap}
}

// WithTag returns a copy of b tagged with tag.
func (b ButtonSpec) WithTag(tag int) ButtonSpec {
	b.Tag = tag
	return b
}

// WithColor returns a copy of b using hue for its label.
func (b ButtonSpec) WithColor(hue components.Hue) ButtonSpec {
	b.Color = hue
	return b
}

// IsCancel reports whether b occupies the cancel slot.
func (b ButtonSpec) IsCancel() bool {
	return b.Style == ButtonCancel
}

func (b ButtonSpec) component(highlighted bool) *components.Button {
	variant := components.ButtonVariantDefault
	switch b.Style {
	case ButtonCancel:
		variant = components.ButtonVariantCancel
	case ButtonDestructive:
		variant = components.ButtonVariantDestructive
	case ButtonPreferred:
		variant = components.ButtonVariantPreferred
	}
	return components.NewButton(b.Label).
		WithVariant(variant).
		WithHue(b.Color).
		WithHighlighted(highlighted)
}
