package dialog

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/geometry"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// ActionSheetLayout anchors a main card holding the content and the stacked
// buttons to the bottom of the screen, with the cancel button in a separate
// card below it.
type ActionSheetLayout struct {
	content content
	buttons []ButtonSpec
	cancel  *ButtonSpec
	cards   []geometry.Rect
}

// NewActionSheetLayout creates an action sheet layout. Empty title or
// message are hidden.
func NewActionSheetLayout(title, message string) *ActionSheetLayout {
	return &ActionSheetLayout{content: content{title: title, message: message}}
}

// AddButtons sets the stacked buttons and the optional cancel button.
func (l *ActionSheetLayout) AddButtons(buttons []ButtonSpec, cancel *ButtonSpec) {
	l.buttons = append([]ButtonSpec(nil), buttons...)
	l.cancel = cancel
}

// AddInputFields is a no-op; action sheets have no input fields.
func (l *ActionSheetLayout) AddInputFields([]*InputField) {}

// AddImage shows img above the title. Empty images are ignored.
func (l *ActionSheetLayout) AddImage(img ImageRef) {
	if !img.IsZero() {
		l.content.image = img
	}
}

// Buttons returns the stacked buttons followed by the cancel button.
func (l *ActionSheetLayout) Buttons() []ButtonSpec {
	out := append([]ButtonSpec(nil), l.buttons...)
	if l.cancel != nil {
		out = append(out, *l.cancel)
	}
	return out
}

// Arrangement returns the stacked buttons of the main card.
func (l *ActionSheetLayout) Arrangement() Arrangement {
	return ArrangeSheetButtons(l.buttons)
}

// Cancel returns the cancel button, or nil.
func (l *ActionSheetLayout) Cancel() *ButtonSpec {
	return l.cancel
}

// Render draws the cards anchored to the bottom of a screen of the given
// size.
func (l *ActionSheetLayout) Render(ctx components.RenderContext, screen geometry.Size, highlight int) Surface {
	limits := components.Constraints{
		MinWidth: components.CardBorderWidth(ctx.Theme) + 1,
		MaxWidth: sheetMaxWidth,
	}
	width := limits.Constrain(screen.W - 2*sheetMargin)

	var s Surface
	l.cards = l.cards[:0]
	y := 0
	arr := l.Arrangement()
	if !l.content.empty() || len(arr.Buttons) > 0 {
		body, _ := l.content.render(ctx, cardInnerWidth(ctx, width))
		view, _, buttons := composeCard(ctx, width, body, nil, arr, highlight)
		rect := geometry.R(0, 0, width, lipgloss.Height(view))
		s.Cards = append(s.Cards, Block{Rect: rect, Content: view})
		s.Buttons = append(s.Buttons, buttons...)
		y = rect.Bottom() + cardGap
	}
	if l.cancel != nil {
		cancelArr := Arrangement{Axis: AxisVertical, Buttons: []ButtonSpec{*l.cancel}}
		cancelHighlight := -1
		if highlight == len(arr.Buttons) {
			cancelHighlight = 0
		}
		view, _, buttons := composeCard(ctx, width, "", nil, cancelArr, cancelHighlight)
		rect := geometry.R(0, y, width, lipgloss.Height(view))
		s.Cards = append(s.Cards, Block{Rect: rect, Content: view})
		for _, b := range buttons {
			s.Buttons = append(s.Buttons, b.Translate(rect.Origin()))
		}
	}

	for _, c := range s.Cards {
		l.cards = append(l.cards, c.Rect)
	}
	bounds := s.Bounds()
	s.Size = geometry.Size{W: width, H: bounds.Bottom()}
	s.Origin = geometry.Pt(max((screen.W-width)/2, 0), max(screen.H-sheetMargin-s.Size.H, 0))
	s.index()
	return s
}

// IsBackgroundTap reports whether p lies outside the bounding union of the
// main and cancel cards. The gap between the cards is not background.
func (l *ActionSheetLayout) IsBackgroundTap(p geometry.Point) bool {
	return !geometry.Bounds(l.cards...).Contains(p)
}
