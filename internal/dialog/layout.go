package dialog

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/geometry"
	"github.com/alexisbeaulieu97/tealert/internal/ui"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// Terminal metrics, in cells.
const (
	alertMaxWidth = 44
	alertMinWidth = 16
	alertMargin   = 2
	sheetMaxWidth = 60
	sheetMargin   = 1

	contentPadY  = 1
	contentPadX  = 2
	blockGap     = 1
	cardGap      = 1
	maxImageRows = 8
)

// Layout composes a dialog's content and buttons into cards and answers hit
// tests against the geometry of the last Render. AlertLayout and
// ActionSheetLayout are the two implementations.
type Layout interface {
	AddButtons(buttons []ButtonSpec, cancel *ButtonSpec)
	AddInputFields(fields []*InputField)
	AddImage(img ImageRef)
	// Buttons returns every button in tap order. Indexes into this slice
	// are the button indexes used by Surface and Controller.TapButton.
	Buttons() []ButtonSpec
	Arrangement() Arrangement
	Render(ctx components.RenderContext, screen geometry.Size, highlight int) Surface
	// IsBackgroundTap reports whether p, in surface coordinates, lies
	// outside every content card.
	IsBackgroundTap(p geometry.Point) bool
}

func newLayout(style Style, title, message string) Layout {
	if style == StyleActionSheet {
		return NewActionSheetLayout(title, message)
	}
	return NewAlertLayout(title, message)
}

// Block is one rendered card positioned in surface coordinates.
type Block struct {
	Rect    geometry.Rect
	Content string
}

// Surface is a rendered dialog. Rects are relative to the surface's
// top-left cell; Origin places that cell on the screen.
type Surface struct {
	Origin  geometry.Point
	Size    geometry.Size
	Cards   []Block
	Buttons []geometry.Rect
	Inputs  []geometry.Rect

	hits *geometry.HitMap
}

const (
	regionButton = "button"
	regionInput  = "input"
)

func (s *Surface) index() {
	s.hits = geometry.NewHitMap()
	for i, r := range s.Inputs {
		s.hits.Add(regionInput, r, i)
	}
	for i, r := range s.Buttons {
		s.hits.Add(regionButton, r, i)
	}
}

// Bounds is the union of the card rects.
func (s Surface) Bounds() geometry.Rect {
	rects := make([]geometry.Rect, len(s.Cards))
	for i, c := range s.Cards {
		rects[i] = c.Rect
	}
	return geometry.Bounds(rects...)
}

// ButtonAt returns the index of the button under p, or -1.
func (s Surface) ButtonAt(p geometry.Point) int {
	return s.regionAt(regionButton, p)
}

// InputAt returns the index of the input field under p, or -1.
func (s Surface) InputAt(p geometry.Point) int {
	return s.regionAt(regionInput, p)
}

func (s Surface) regionAt(id string, p geometry.Point) int {
	region := s.hits.Test(p)
	if region == nil || region.ID != id {
		return -1
	}
	if i, ok := region.Data.(int); ok {
		return i
	}
	return -1
}

// ToLocal converts a screen point to surface coordinates for a surface
// drawn shift rows above its origin.
func (s Surface) ToLocal(p geometry.Point, shift int) geometry.Point {
	return p.Sub(s.Origin).Add(geometry.Pt(0, shift))
}

// ToScreen converts a surface rect to screen coordinates.
func (s Surface) ToScreen(r geometry.Rect, shift int) geometry.Rect {
	return r.Translate(s.Origin.Sub(geometry.Pt(0, shift)))
}

// content is the title, message, image and input block shared by both
// layouts.
type content struct {
	title   string
	message string
	image   ImageRef
	inputs  []*InputField
}

func (c *content) empty() bool {
	return c.title == "" && c.message == "" && c.image.IsZero() && len(c.inputs) == 0
}

// render draws the padded content block width cells wide. Input rects are
// relative to the block's top-left cell. Empty content renders "".
func (c *content) render(ctx components.RenderContext, width int) (string, []geometry.Rect) {
	if c.empty() {
		return "", nil
	}
	inner := max(width-2*contentPadX, 1)
	innerCtx := ctx.WithWidth(inner)

	var blocks []ui.Renderable
	var inputs []geometry.Rect
	row := contentPadY
	push := func(view string) {
		if len(blocks) > 0 {
			row += blockGap
		}
		blocks = append(blocks, ui.Static(view))
		row += lipgloss.Height(view)
	}

	if img := c.image.Image(); img != nil {
		push(components.NewImage(img).WithMaxRows(maxImageRows).ViewWithContext(innerCtx))
	}
	if c.title != "" {
		push(components.TitleText(c.title).ViewWithContext(innerCtx))
	}
	if c.message != "" {
		push(components.MessageText(c.message).ViewWithContext(innerCtx))
	}
	if len(c.inputs) > 0 {
		top := row
		if len(blocks) > 0 {
			top += blockGap
		}
		fields := components.VStack()
		for i, f := range c.inputs {
			if i > 0 {
				fields.Add(components.HorizontalDivider())
			}
			fields.Add(f)
			inputs = append(inputs, geometry.R(contentPadX, top+2*i, inner, 1))
		}
		push(fields.ViewWithContext(innerCtx))
	}

	view := components.NewContainer(blocks...).
		WithPadding(components.SymmetricSpacing(contentPadY, contentPadX)).
		WithGap(blockGap).
		WithAppliers(components.Background(components.RoleCard)).
		ViewWithContext(ctx.WithWidth(width))
	return view, inputs
}

// renderButtons draws an arrangement width cells wide. Button rects are
// relative to the block's top-left cell; highlight indexes arr.Buttons.
func renderButtons(ctx components.RenderContext, arr Arrangement, width, highlight int) (string, []geometry.Rect) {
	if len(arr.Buttons) == 0 {
		return "", nil
	}

	rects := make([]geometry.Rect, 0, len(arr.Buttons))
	if arr.Axis == AxisHorizontal {
		row := components.HStack()
		for i, b := range arr.Buttons {
			if i > 0 {
				row.Add(components.VerticalDivider(1))
			}
			row.Add(b.component(i == highlight))
		}
		x := 0
		for i, w := range row.ChildWidths(width) {
			if i%2 == 0 {
				rects = append(rects, geometry.R(x, 0, w, 1))
			}
			x += w
		}
		return row.ViewWithContext(ctx.WithWidth(width)), rects
	}

	column := components.VStack()
	y := 0
	for i, b := range arr.Buttons {
		if i > 0 {
			column.Add(components.HorizontalDivider())
			y++
		}
		column.Add(b.component(i == highlight))
		rects = append(rects, geometry.R(0, y, width, 1))
		y++
	}
	return column.ViewWithContext(ctx.WithWidth(width)), rects
}

// card wraps pre-rendered parts in a bordered card width cells wide and
// returns it with the offset of its body.
func card(ctx components.RenderContext, width int, parts ...string) (string, geometry.Point) {
	children := make([]ui.Renderable, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			children = append(children, ui.Static(p))
		}
	}
	c := components.NewCard(children...)
	x, y := c.InnerOffset(ctx.Theme)
	return c.ViewWithContext(ctx.WithWidth(width)), geometry.Pt(x, y)
}

func cardInnerWidth(ctx components.RenderContext, width int) int {
	return max(width-components.CardBorderWidth(ctx.Theme), 1)
}

// composeCard stacks an optional content block, a divider when both
// content and buttons exist, and the button block into one card. Rects are
// returned in card coordinates.
func composeCard(ctx components.RenderContext, width int, body string, inputs []geometry.Rect, arr Arrangement, highlight int) (string, []geometry.Rect, []geometry.Rect) {
	inner := cardInnerWidth(ctx, width)
	buttons, buttonRects := renderButtons(ctx, arr, inner, highlight)

	parts := []string{body}
	y := 0
	if body != "" {
		y = lipgloss.Height(body)
	}
	if body != "" && buttons != "" {
		parts = append(parts, components.HorizontalDivider().ViewWithContext(ctx.WithWidth(inner)))
		y++
	}
	parts = append(parts, buttons)

	view, offset := card(ctx, width, parts...)
	for i := range inputs {
		inputs[i] = inputs[i].Translate(offset)
	}
	for i := range buttonRects {
		buttonRects[i] = buttonRects[i].Translate(offset.Add(geometry.Pt(0, y)))
	}
	return view, inputs, buttonRects
}
