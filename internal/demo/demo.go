// Package demo holds the sample dialogs of the tealert demo. The menu is
// itself an action sheet; picking an entry presents that sample, and the
// menu comes back once the sample is dismissed.
package demo

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/tealert/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tealert/internal/ports"
)

// Option configures a Demo.
type Option func(*Demo)

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(d *Demo) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithPublisher sets the publisher dialogs report to. The demo subscribes
// to it to bring the menu back.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(d *Demo) {
		if publisher != nil {
			d.publisher = publisher
		}
	}
}

// WithContext sets the context passed to every dialog.
func WithContext(ctx context.Context) Option {
	return func(d *Demo) {
		if ctx != nil {
			d.ctx = ctx
		}
	}
}

// WithImage replaces the picture used by the image samples.
func WithImage(img dialog.ImageRef) Option {
	return func(d *Demo) {
		d.image = img
	}
}

// Demo presents sample dialogs on a host.
type Demo struct {
	ctx       context.Context
	logger    ports.Logger
	publisher ports.EventPublisher
	host      dialog.Host
	image     dialog.ImageRef
	sub       ports.Subscription

	mu         sync.Mutex
	inSample   bool
	single     bool
	transcript []string
}

// New creates a demo presenting on host.
func New(host dialog.Host, opts ...Option) (*Demo, error) {
	if host == nil {
		return nil, fmt.Errorf("demo: host is required")
	}
	d := &Demo{
		ctx:    context.Background(),
		logger: logging.NewNoOpLogger(),
		host:   host,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	d.logger = d.logger.With("component", "demo")
	if d.publisher == nil {
		d.publisher = events.NewLoggingPublisher(d.logger)
	}
	if d.image.IsZero() {
		d.image = SampleImage()
	}

	sub, err := d.publisher.Subscribe(ports.EventDialogDismissed, d.onDismissed)
	if err != nil {
		return nil, fmt.Errorf("subscribe to dismissals: %w", err)
	}
	d.sub = sub
	return d, nil
}

// Start presents the menu.
func (d *Demo) Start() error {
	return d.showMenu()
}

// Run presents a single sample by name. The menu does not come back.
func (d *Demo) Run(name string) error {
	scenario, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	d.mu.Lock()
	d.single = true
	d.mu.Unlock()
	return d.present(scenario)
}

// Close stops listening for dismissals.
func (d *Demo) Close() {
	if d.sub != nil {
		d.sub.Unsubscribe()
		d.sub = nil
	}
}

// Transcript returns what the samples reported, in order.
func (d *Demo) Transcript() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.transcript...)
}

// Build creates the controller of a sample.
func (d *Demo) Build(s Scenario) (*dialog.Controller, error) {
	if s.build == nil {
		return nil, fmt.Errorf("scenario %q has no dialog", s.Name)
	}
	return s.build(d)
}

// Menu creates the menu action sheet.
func (d *Demo) Menu() (*dialog.Controller, error) {
	c := d.newController("tealert", "", dialog.StyleActionSheet)
	for _, s := range Scenarios() {
		s := s
		label := fmt.Sprintf("%s: %s", s.Section, s.Title)
		err := c.AddButton(dialog.NewButton(label, dialog.ButtonDefault, func(dialog.ButtonSpec) {
			if err := d.present(s); err != nil {
				d.logger.Error(d.ctx, "present sample failed", "scenario", s.Name, "error", err)
			}
		}))
		if err != nil {
			return nil, err
		}
	}
	if err := c.AddButton(dialog.NewButton("Quit", dialog.ButtonCancel, nil)); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *Demo) showMenu() error {
	menu, err := d.Menu()
	if err != nil {
		return err
	}
	menu.Present(d.host)
	return nil
}

func (d *Demo) present(s Scenario) error {
	c, err := d.Build(s)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.inSample = true
	d.mu.Unlock()
	d.logger.Info(d.ctx, "presenting sample", "scenario", s.Name)
	c.Present(d.host)
	return nil
}

// onDismissed brings the menu back after a sample closes.
func (d *Demo) onDismissed(context.Context, ports.DomainEvent) error {
	d.mu.Lock()
	wasSample := d.inSample
	d.inSample = false
	single := d.single
	d.mu.Unlock()

	if !wasSample || single {
		return nil
	}
	return d.showMenu()
}

func (d *Demo) newController(title, message string, style dialog.Style) *dialog.Controller {
	return dialog.New(title, message, style,
		dialog.WithLogger(d.logger),
		dialog.WithPublisher(d.publisher),
		dialog.WithContext(d.ctx),
	)
}

// note records what a sample's button reported.
func (d *Demo) note(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	d.logger.Info(d.ctx, "sample result", "result", line)
	d.mu.Lock()
	d.transcript = append(d.transcript, line)
	d.mu.Unlock()
}
