package dialog

import (
	"context"

	"github.com/alexisbeaulieu97/tealert/internal/geometry"
	"github.com/alexisbeaulieu97/tealert/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tealert/internal/ports"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// Host presents dialogs. Show puts a controller on screen; Remove takes c
// off and must call done once the removal transition has finished.
type Host interface {
	Show(c *Controller)
	Remove(c *Controller, done func())
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPublisher sets the publisher lifecycle events are sent to.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(c *Controller) {
		c.publisher = publisher
	}
}

// WithContext sets the context used for logging and events.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithKeyboardMargin sets the rows kept free above an on-screen keyboard.
func WithKeyboardMargin(margin int) Option {
	return func(c *Controller) {
		c.keyboard = NewKeyboardAvoidance(margin)
	}
}

// Controller owns a dialog's content and lifecycle. It moves through
// Created, Configuring, Presented, Dismissing and Dismissed and is used
// once. It is not safe for concurrent use; drive it from the host's update
// loop.
type Controller struct {
	ctx       context.Context
	logger    ports.Logger
	publisher ports.EventPublisher

	style   Style
	title   string
	message string
	layout  Layout

	buttons []ButtonSpec
	cancel  *ButtonSpec
	inputs  []*InputField
	image   ImageRef

	dismissOnBackgroundTap bool
	state                  State
	host                   Host
	pending                *ButtonSpec

	keyboard          *KeyboardAvoidance
	observingKeyboard bool
	surface           Surface
}

// New creates a controller for a dialog of the given style.
func New(title, message string, style Style, opts ...Option) *Controller {
	c := &Controller{
		ctx:                    context.Background(),
		logger:                 logging.NewNoOpLogger(),
		style:                  style,
		title:                  title,
		message:                message,
		layout:                 newLayout(style, title, message),
		dismissOnBackgroundTap: true,
		keyboard:               NewKeyboardAvoidance(DefaultKeyboardMargin),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.logger = c.logger.With("component", "controller", "dialog_style", style.String())
	return c
}

func (c *Controller) configurable() error {
	if c.state > StateConfiguring {
		return ErrConfigurationLocked.WithContext(map[string]interface{}{"state": c.state.String()})
	}
	return nil
}

// AddButton registers a button. A cancel button fills the cancel slot; a
// second one fails with ErrDuplicateCancel.
func (c *Controller) AddButton(spec ButtonSpec) error {
	if err := c.configurable(); err != nil {
		return err
	}
	if spec.IsCancel() {
		if c.cancel != nil {
			return ErrDuplicateCancel.WithContext(map[string]interface{}{
				"existing": c.cancel.Label,
				"label":    spec.Label,
			})
		}
		cancel := spec
		c.cancel = &cancel
	} else {
		c.buttons = append(c.buttons, spec)
	}
	c.state = StateConfiguring
	return nil
}

// AddButtons registers specs in order and stops at the first error.
func (c *Controller) AddButtons(specs ...ButtonSpec) error {
	for _, spec := range specs {
		if err := c.AddButton(spec); err != nil {
			return err
		}
	}
	return nil
}

// AddInputField adds an input field to an alert. configure may be nil.
func (c *Controller) AddInputField(configure func(*InputField)) error {
	if err := c.configurable(); err != nil {
		return err
	}
	if c.style != StyleAlert {
		return ErrInputUnsupported.WithContext(map[string]interface{}{"style": c.style.String()})
	}
	field := newInputField()
	if configure != nil {
		configure(field)
	}
	field.sync()
	c.inputs = append(c.inputs, field)
	c.state = StateConfiguring
	return nil
}

// AddImage sets the image shown above the title. It fails with
// ErrDuplicateImage once an image is set. An empty image is accepted but
// does not occupy the slot.
func (c *Controller) AddImage(img ImageRef) error {
	if err := c.configurable(); err != nil {
		return err
	}
	if !c.image.IsZero() {
		return ErrDuplicateImage
	}
	c.state = StateConfiguring
	if img.IsZero() {
		return nil
	}
	c.image = img
	c.layout.AddImage(img)
	return nil
}

// Present hands the dialog to host. Calls in any state other than Created
// or Configuring are ignored.
func (c *Controller) Present(host Host) {
	if c.state > StateConfiguring {
		c.logger.Debug(c.ctx, "present ignored", "state", c.state.String())
		return
	}
	if host == nil {
		c.logger.Warn(c.ctx, "present without host")
		return
	}

	c.layout.AddButtons(c.buttons, c.cancel)
	if c.style == StyleAlert && len(c.inputs) > 0 {
		c.layout.AddInputFields(c.inputs)
	}
	c.observingKeyboard = len(c.inputs) > 0
	c.host = host
	c.state = StatePresented

	c.logger.Info(c.ctx, "dialog presented", "buttons", len(c.layout.Buttons()), "inputs", len(c.inputs))
	host.Show(c)
	c.publish(ports.EventDialogPresented, map[string]interface{}{
		"buttons": len(c.layout.Buttons()),
		"inputs":  len(c.inputs),
	})
}

// Render lays the dialog out on a screen of the given size and keeps the
// resulting geometry for hit testing. highlight indexes Buttons; -1
// highlights nothing.
func (c *Controller) Render(ctx components.RenderContext, screen geometry.Size, highlight int) Surface {
	c.surface = c.layout.Render(ctx, screen, highlight)
	return c.surface
}

// HandleBackgroundTap handles a tap at screen point p. It reports whether
// the tap dismissed the dialog. Taps are ignored unless presented, and
// until the dialog has been rendered at least once.
func (c *Controller) HandleBackgroundTap(p geometry.Point) bool {
	if c.state != StatePresented || c.surface.Size == (geometry.Size{}) {
		return false
	}
	local := c.surface.ToLocal(p, c.keyboard.Offset())
	if !c.layout.IsBackgroundTap(local) {
		return false
	}
	return c.backgroundTap(map[string]interface{}{"x": p.X, "y": p.Y})
}

// DismissFromBackground treats a host gesture such as the escape key as a
// background tap. It reports whether the dialog was dismissed.
func (c *Controller) DismissFromBackground() bool {
	if c.state != StatePresented {
		return false
	}
	return c.backgroundTap(map[string]interface{}{"source": "key"})
}

func (c *Controller) backgroundTap(fields map[string]interface{}) bool {
	fields["enabled"] = c.dismissOnBackgroundTap
	c.publish(ports.EventBackgroundTap, fields)
	if !c.dismissOnBackgroundTap {
		return false
	}
	c.beginDismissal(nil)
	return true
}

// TapButton handles a tap on the button at index in Buttons. The dialog is
// dismissed and the button's OnTap runs once the host has finished removing
// it. Taps are ignored unless presented.
func (c *Controller) TapButton(index int) bool {
	if c.state != StatePresented {
		c.logger.Debug(c.ctx, "tap ignored", "state", c.state.String(), "button_index", index)
		return false
	}
	buttons := c.layout.Buttons()
	if index < 0 || index >= len(buttons) {
		return false
	}
	spec := buttons[index]
	c.publish(ports.EventButtonTapped, map[string]interface{}{
		"button_index": index,
		"button_tag":   spec.Tag,
		"label":        spec.Label,
		"button_style": spec.Style.String(),
	})
	c.beginDismissal(&spec)
	return true
}

// Dismiss removes a presented dialog without running any callback.
func (c *Controller) Dismiss() {
	if c.state != StatePresented {
		return
	}
	c.beginDismissal(nil)
}

func (c *Controller) beginDismissal(pending *ButtonSpec) {
	c.state = StateDismissing
	c.pending = pending
	for _, f := range c.inputs {
		f.Blur()
	}
	c.publish(ports.EventDialogDismissing, nil)
	c.host.Remove(c, c.CompleteDismissal)
}

// CompleteDismissal is called by the host when removal has finished. The
// pending button callback runs after the dialog.dismissed event.
func (c *Controller) CompleteDismissal() {
	if c.state != StateDismissing {
		return
	}
	c.state = StateDismissed
	pending := c.pending
	c.pending = nil

	fields := map[string]interface{}{}
	if pending != nil {
		fields["label"] = pending.Label
		fields["button_tag"] = pending.Tag
	}
	c.logger.Info(c.ctx, "dialog dismissed", "by_button", pending != nil)
	c.publish(ports.EventDialogDismissed, fields)

	if pending != nil && pending.OnTap != nil {
		pending.OnTap(*pending)
	}
}

// HandleKeyboard applies keyboard avoidance for a keyboard covering frame,
// in screen coordinates. It only acts on presented dialogs with input
// fields and returns the upward shift of the surface.
func (c *Controller) HandleKeyboard(frame *geometry.Rect) (int, bool) {
	if !c.observingKeyboard || c.state != StatePresented {
		return c.keyboard.Offset(), false
	}
	bottom := c.surface.Origin.Y + c.surface.Size.H
	offset, changed := c.keyboard.Apply(bottom, frame)
	if changed {
		c.logger.Debug(c.ctx, "keyboard avoidance", "offset", offset)
		c.publish(ports.EventKeyboardAvoidance, map[string]interface{}{"offset": offset})
	}
	return offset, changed
}

// KeyboardOffset returns the rows the surface is shifted up by.
func (c *Controller) KeyboardOffset() int {
	return c.keyboard.Offset()
}

// ButtonAt returns the index of the button at screen point p, or -1.
func (c *Controller) ButtonAt(p geometry.Point) int {
	return c.surface.ButtonAt(c.surface.ToLocal(p, c.keyboard.Offset()))
}

// InputAt returns the index of the input field at screen point p, or -1.
func (c *Controller) InputAt(p geometry.Point) int {
	return c.surface.InputAt(c.surface.ToLocal(p, c.keyboard.Offset()))
}

// SetDismissOnBackgroundTap enables or disables dismissal by background
// taps. It may be called at any time.
func (c *Controller) SetDismissOnBackgroundTap(enabled bool) {
	c.dismissOnBackgroundTap = enabled
}

// DismissOnBackgroundTap reports whether background taps dismiss.
func (c *Controller) DismissOnBackgroundTap() bool {
	return c.dismissOnBackgroundTap
}

// Buttons returns the buttons in tap order once presented.
func (c *Controller) Buttons() []ButtonSpec {
	return c.layout.Buttons()
}

// CancelIndex returns the index of the cancel button in Buttons, or -1.
func (c *Controller) CancelIndex() int {
	for i, b := range c.layout.Buttons() {
		if b.IsCancel() {
			return i
		}
	}
	return -1
}

// InputFields returns the input fields in order.
func (c *Controller) InputFields() []*InputField {
	return c.inputs
}

// InputValue returns the value of the first field tagged tag.
func (c *Controller) InputValue(tag int) (string, bool) {
	for _, f := range c.inputs {
		if f.Tag == tag {
			return f.Value(), true
		}
	}
	return "", false
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Style returns the dialog style.
func (c *Controller) Style() Style { return c.style }

// Title returns the title.
func (c *Controller) Title() string { return c.title }

// Message returns the message.
func (c *Controller) Message() string { return c.message }

// Layout returns the layout chosen for the style.
func (c *Controller) Layout() Layout { return c.layout }

// Image returns the image, which may be zero.
func (c *Controller) Image() ImageRef { return c.image }

// Surface returns the geometry of the last Render.
func (c *Controller) Surface() Surface { return c.surface }
