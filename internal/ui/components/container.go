package components

import (
	"github.com/alexisbeaulieu97/tealert/internal/ui"
)

// Container is a filled block that pads a vertical stack of children. The
// children receive the container width minus horizontal padding.
type Container struct {
	BaseComponent
	layout  *Stack
	padding Spacing
}

// NewContainer creates an unpadded container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container with the default context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme).
		Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)

	childCtx := ctx
	if width := ctx.Constraints.Width(); width > 0 {
		style = style.Width(width)
		childCtx = ctx.WithWidth(max(width-c.padding.Horizontal(), 1))
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(childCtx)
	}
	return style.Render(content)
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithGap sets the rows between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithAppliers replaces the theme-aware style functions.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the children in order.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Padding returns the padding.
func (c *Container) Padding() Spacing {
	return c.padding
}
