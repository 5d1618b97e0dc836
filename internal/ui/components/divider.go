package components

import (
	"strings"
)

// Divider is a one-cell thin line. Horizontal dividers fill the width they
// are given; vertical dividers are one column wide and Length rows tall.
type Divider struct {
	BaseComponent
	char      string
	length    int
	direction Direction
}

// HorizontalDivider creates a full-width horizontal line.
func HorizontalDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
	d.SetAppliers(Foreground(RoleDivider), Background(RoleCard))
	return d
}

// VerticalDivider creates a vertical line of the given height.
func VerticalDivider(height int) *Divider {
	d := HorizontalDivider()
	d.char = "│"
	d.direction = DirectionVertical
	d.length = height
	return d
}

// View renders the divider with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length
	if d.direction == DirectionHorizontal && length <= 0 {
		length = ctx.Constraints.Width()
	}
	if length <= 0 {
		length = 1
	}

	var content string
	if d.direction == DirectionHorizontal {
		content = strings.Repeat(d.char, length)
	} else {
		content = strings.TrimSuffix(strings.Repeat(d.char+"\n", length), "\n")
	}
	return d.ComputeStyle(ctx.Theme).Render(content)
}

// FixedWidth implements FixedWidth for vertical dividers.
func (d *Divider) FixedWidth() int {
	if d.direction == DirectionVertical {
		return 1
	}
	return 0
}

// WithChar replaces the line character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLength sets an explicit length.
func (d *Divider) WithLength(length int) *Divider {
	d.length = length
	return d
}

// WithAppliers replaces the theme-aware style functions.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// Direction returns the divider orientation.
func (d *Divider) Direction() Direction {
	return d.direction
}
