package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/ui"
)

// BaseComponent carries the raw style and the theme-aware strategy shared by
// every component. Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy resolves a component style against a theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a style using theme data.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies style functions in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply implements StyleStrategy.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn != nil {
			base = fn(base, theme)
		}
	}
	return base
}

// NewCompositeStrategy builds a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent returns a component base with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component style for theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}
	current := b.strategy
	b.strategy = NewCompositeStrategy(append([]StyleFunc{
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if current == nil {
				return base
			}
			return current.Apply(base, theme)
		},
	}, appliers...)...)
}

// Spacing is padding or margin in cells, clockwise from the top.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// SymmetricSpacing uses vertical for top/bottom and horizontal for left/right.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Constraints bound the width a component may occupy. A negative maximum is
// unlimited.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1}
}

// WithWidth fixes the width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width}
}

// WithMaxWidth caps the width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// Constrain clamps width to the bounds. The minimum wins when the two cross.
func (c Constraints) Constrain(width int) int {
	if c.MaxWidth >= 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	return width
}

// Width returns the width a component should fill, or 0 when unbounded.
func (c Constraints) Width() int {
	if c.MaxWidth >= 0 {
		return c.MaxWidth
	}
	return c.MinWidth
}

// RenderContext carries the theme and the space granted by the parent.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

// DefaultContext uses the default theme with no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// NewContext renders with theme and no constraints.
func NewContext(theme Theme) RenderContext {
	return RenderContext{Theme: theme, Constraints: Unconstrained()}
}

// WithTheme returns a copy using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy using c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithWidth returns a copy constrained to exactly width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	return r.WithConstraints(WithWidth(width))
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it supports contexts.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// CrossAxisAlignment positions children across a stack's axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
