package components

import (
	"github.com/alexisbeaulieu97/tealert/internal/ui"
)

// Card is the rounded, filled container holding a dialog's content. The
// body is laid out as a vertical stack without padding so dividers and
// buttons reach the border.
type Card struct {
	BaseComponent
	body *Stack
}

// NewCard creates a card around children.
func NewCard(children ...ui.Renderable) *Card {
	c := &Card{
		BaseComponent: NewBaseComponent(),
		body:          VStack(children...),
	}
	c.SetAppliers(CardStyle()...)
	return c
}

// View renders the card with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. A width constraint covers the border.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	bodyCtx := ctx
	if width := ctx.Constraints.Width(); width > 0 {
		inner := max(width-style.GetHorizontalBorderSize(), 1)
		style = style.Width(inner)
		bodyCtx = ctx.WithWidth(inner)
	}
	return style.Render(c.body.ViewWithContext(bodyCtx))
}

// InnerOffset is the position of the body's top-left cell relative to the
// card's top-left cell.
func (c *Card) InnerOffset(theme Theme) (x, y int) {
	style := c.ComputeStyle(theme)
	return style.GetBorderLeftSize(), style.GetBorderTopSize()
}

// Add appends children to the body.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.body.Add(children...)
	return c
}

// Children returns the body children.
func (c *Card) Children() []ui.Renderable {
	return c.body.Children()
}

// WithAppliers appends theme-aware style functions.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// CardBorderWidth is the number of columns a card's border occupies.
func CardBorderWidth(theme Theme) int {
	c := NewCard()
	return c.ComputeStyle(theme).GetHorizontalBorderSize()
}
