package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/ui"
)

// Direction is the main axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// FixedWidth is implemented by children that occupy a set number of
// columns in a horizontal stack regardless of the space available.
type FixedWidth interface {
	FixedWidth() int
}

// Stack arranges children along one axis. In a vertical stack every child
// receives the full width; in a horizontal stack fixed-width children keep
// their width and the remaining columns are split evenly between the rest,
// any leftover column going to the last flexible child.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	children := s.visibleChildren()
	style := s.ComputeStyle(ctx.Theme)
	if len(children) == 0 {
		return style.Render("")
	}

	views := make([]string, 0, len(children))
	if s.direction == DirectionHorizontal {
		widths := s.ChildWidths(ctx.Constraints.Width())
		for i, child := range children {
			childCtx := ctx
			if widths != nil {
				childCtx = ctx.WithWidth(widths[i])
			}
			views = append(views, Render(child, childCtx))
		}
		return style.Render(s.join(views, lipgloss.JoinHorizontal, strings.Repeat(" ", s.gap)))
	}

	for _, child := range children {
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if width := ctx.Constraints.Width(); width > 0 {
		style = style.Width(width)
	}
	return style.Render(s.join(views, lipgloss.JoinVertical, strings.Repeat("\n", max(s.gap-1, 0))))
}

// ChildWidths returns the columns given to each child of a horizontal stack
// of the given total width, or nil when the width is unbounded.
func (s *Stack) ChildWidths(total int) []int {
	children := s.visibleChildren()
	if total <= 0 || len(children) == 0 {
		return nil
	}

	widths := make([]int, len(children))
	remaining := total - s.gap*(len(children)-1)
	flexible := make([]int, 0, len(children))
	for i, child := range children {
		if fixed, ok := child.(FixedWidth); ok && fixed.FixedWidth() > 0 {
			widths[i] = fixed.FixedWidth()
			remaining -= widths[i]
			continue
		}
		flexible = append(flexible, i)
	}
	if len(flexible) == 0 || remaining <= 0 {
		return widths
	}

	share := remaining / len(flexible)
	for _, i := range flexible {
		widths[i] = share
	}
	widths[flexible[len(flexible)-1]] += remaining - share*len(flexible)
	return widths
}

func (s *Stack) join(views []string, joiner func(lipgloss.Position, ...string) string, spacer string) string {
	if s.gap == 0 || len(views) < 2 {
		return joiner(s.crossAlign.position(), views...)
	}
	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return joiner(s.crossAlign.position(), spaced...)
}

func (s *Stack) visibleChildren() []ui.Renderable {
	out := make([]ui.Renderable, 0, len(s.children))
	for _, child := range s.children {
		if child != nil {
			out = append(out, child)
		}
	}
	return out
}

// WithDirection sets the main axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the blank rows or columns between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross-axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers sets theme-aware style functions.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the children in order.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// Direction returns the main axis.
func (s *Stack) Direction() Direction {
	return s.direction
}
