// Package tui hosts dialogs in a bubbletea program. The Model draws a scrim
// over the program's backdrop, composites the presented dialog and routes
// mouse, keyboard and on-screen keyboard signals to its controller.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tealert/internal/ports"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// DefaultFadeDuration is the length of the appear and removal transitions.
const DefaultFadeDuration = 150 * time.Millisecond

type phase int

const (
	phaseIdle phase = iota
	phaseAppearing
	phaseShown
	phaseDisappearing
)

// Stage holds the dialog on screen. It implements dialog.Host and is shared
// by every copy of the Model, so controllers can present onto it from
// button callbacks.
type Stage struct {
	current *dialog.Controller
	queue   []*dialog.Controller
	phase   phase
	gen     int
	done    func()
	fade    time.Duration
	cmds    []tea.Cmd
}

var _ dialog.Host = (*Stage)(nil)

// Show puts c on screen, or queues it behind the dialog already shown.
func (s *Stage) Show(c *dialog.Controller) {
	if c == nil {
		return
	}
	if s.current != nil {
		s.queue = append(s.queue, c)
		return
	}
	s.current = c
	s.phase = phaseAppearing
	s.gen++
	s.cmds = append(s.cmds, fadeCmd(s.fade, fadeInDoneMsg{gen: s.gen}))
}

// Remove starts the removal transition of c. done runs once it has
// finished. A queued controller leaves the queue and done runs at once.
func (s *Stage) Remove(c *dialog.Controller, done func()) {
	if c != s.current {
		for i, queued := range s.queue {
			if queued == c {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				break
			}
		}
		if done != nil {
			done()
		}
		return
	}
	s.phase = phaseDisappearing
	s.done = done
	s.gen++
	s.cmds = append(s.cmds, fadeCmd(s.fade, fadeOutDoneMsg{gen: s.gen}))
}

// Current returns the dialog on screen, or nil.
func (s *Stage) Current() *dialog.Controller {
	return s.current
}

// Idle reports whether nothing is shown or queued.
func (s *Stage) Idle() bool {
	return s.current == nil && len(s.queue) == 0
}

func (s *Stage) finishRemoval() {
	done := s.done
	s.done = nil
	s.current = nil
	s.phase = phaseIdle
	if done != nil {
		done()
	}
	if s.current == nil && len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.Show(next)
	}
}

func (s *Stage) drain() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return cmds
}

func fadeCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the theme dialogs are drawn with.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithBackdrop sets the content drawn behind the scrim.
func WithBackdrop(content string) Option {
	return func(m *Model) {
		m.backdrop = content
	}
}

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithContext sets the context used for logging.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithFadeDuration sets the transition length. Zero completes transitions
// on the next update.
func WithFadeDuration(d time.Duration) Option {
	return func(m *Model) {
		m.stage.fade = d
	}
}

// WithSize sets the initial screen size, before the first WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// QuitWhenIdle makes the program quit once the last dialog is removed.
func QuitWhenIdle() Option {
	return func(m *Model) {
		m.quitWhenIdle = true
	}
}

// Model is the bubbletea host for dialogs.
type Model struct {
	ctx    context.Context
	logger ports.Logger
	stage  *Stage

	// Presentation
	theme    components.Theme
	backdrop string
	keys     keyMap
	help     help.Model

	// Screen
	width  int
	height int

	// Interaction: focus indexes inputs first, then buttons. -1 is none.
	focus int
	hover int

	quitWhenIdle bool
	quitting     bool
}

// NewModel creates a host with an empty stage.
func NewModel(opts ...Option) Model {
	m := Model{
		ctx:    context.Background(),
		logger: logging.NewNoOpLogger(),
		stage:  &Stage{fade: DefaultFadeDuration},
		theme:  components.DefaultTheme(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		focus:  -1,
		hover:  -1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	m.help.Width = max(m.width-2, 0)
	m.logger = m.logger.With("component", "tui")
	return m
}

// Init starts the transitions of dialogs presented before the program ran.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.stage.drain()...)
}

// Stage returns the host controllers are presented on.
func (m Model) Stage() *Stage {
	return m.stage
}

// Width returns the screen width.
func (m Model) Width() int {
	return m.width
}

// Height returns the screen height.
func (m Model) Height() int {
	return m.height
}

// SetBackdrop replaces the content drawn behind the scrim. Programs that
// embed the Model call it when their own view changes.
func (m Model) SetBackdrop(content string) Model {
	m.backdrop = content
	return m
}

// Quitting reports whether the model has asked the program to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// active returns the shown dialog when it accepts interaction.
func (m Model) active() *dialog.Controller {
	if m.stage.phase != phaseShown {
		return nil
	}
	return m.stage.current
}

func (m Model) focusables() (inputs, buttons int) {
	c := m.stage.current
	if c == nil {
		return 0, 0
	}
	return len(c.InputFields()), len(c.Buttons())
}

// focusedInput returns the focused input field, or nil.
func (m Model) focusedInput() *dialog.InputField {
	c := m.stage.current
	if c == nil || m.focus < 0 {
		return nil
	}
	fields := c.InputFields()
	if m.focus >= len(fields) {
		return nil
	}
	return fields[m.focus]
}

// focusedButton returns the focused button index, or -1.
func (m Model) focusedButton() int {
	inputs, buttons := m.focusables()
	if m.focus < inputs || m.focus >= inputs+buttons {
		return -1
	}
	return m.focus - inputs
}

// highlight is the button drawn highlighted: the hovered one, else the
// focused one.
func (m Model) highlight() int {
	if m.hover >= 0 {
		return m.hover
	}
	return m.focusedButton()
}
