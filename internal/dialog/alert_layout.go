package dialog

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/geometry"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// AlertLayout is a single card centred on the screen holding the content,
// the input fields and the buttons.
type AlertLayout struct {
	content content
	buttons []ButtonSpec
	cancel  *ButtonSpec
	card    geometry.Rect
}

// NewAlertLayout creates an alert layout. Empty title or message are hidden.
func NewAlertLayout(title, message string) *AlertLayout {
	return &AlertLayout{content: content{title: title, message: message}}
}

// AddButtons sets the buttons and the optional cancel button.
func (l *AlertLayout) AddButtons(buttons []ButtonSpec, cancel *ButtonSpec) {
	l.buttons = append([]ButtonSpec(nil), buttons...)
	l.cancel = cancel
}

// AddInputFields sets the input fields shown between content and buttons.
func (l *AlertLayout) AddInputFields(fields []*InputField) {
	l.content.inputs = append([]*InputField(nil), fields...)
}

// AddImage shows img above the title. Empty images are ignored.
func (l *AlertLayout) AddImage(img ImageRef) {
	if !img.IsZero() {
		l.content.image = img
	}
}

// Buttons returns the buttons in arrangement order.
func (l *AlertLayout) Buttons() []ButtonSpec {
	return l.Arrangement().Buttons
}

// Arrangement returns the button arrangement.
func (l *AlertLayout) Arrangement() Arrangement {
	return ArrangeAlertButtons(l.buttons, l.cancel)
}

// Render draws the card centred on a screen of the given size.
func (l *AlertLayout) Render(ctx components.RenderContext, screen geometry.Size, highlight int) Surface {
	arr := l.Arrangement()
	width := alertWidth(ctx, screen.W, arr)

	body, inputs := l.content.render(ctx, cardInnerWidth(ctx, width))
	view, inputs, buttons := composeCard(ctx, width, body, inputs, arr, highlight)

	size := geometry.Size{W: width, H: lipgloss.Height(view)}
	l.card = geometry.R(0, 0, size.W, size.H)

	s := Surface{
		Origin:  geometry.Pt(max((screen.W-size.W)/2, 0), max((screen.H-size.H)/2, 0)),
		Size:    size,
		Cards:   []Block{{Rect: l.card, Content: view}},
		Buttons: buttons,
		Inputs:  inputs,
	}
	s.index()
	return s
}

// IsBackgroundTap reports whether p lies outside the card.
func (l *AlertLayout) IsBackgroundTap(p geometry.Point) bool {
	return !l.card.Contains(p)
}

// alertWidth caps the card at alertMaxWidth and keeps alertMargin free on
// both sides. A two-button row needs an odd inner width so the halves
// either side of the divider are equal.
func alertWidth(ctx components.RenderContext, screenW int, arr Arrangement) int {
	width := components.WithMaxWidth(alertMaxWidth).Constrain(screenW - 2*alertMargin)
	if width < alertMinWidth {
		width = min(alertMinWidth, screenW)
	}
	border := components.CardBorderWidth(ctx.Theme)
	if arr.Axis == AxisHorizontal && (width-border-1)%2 != 0 {
		width--
	}
	return max(width, border+1)
}
