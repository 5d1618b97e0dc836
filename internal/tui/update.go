package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tealert/internal/geometry"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-2, 0)
		m.syncKeyboard()

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.handleMouse(msg)
		cmds = append(cmds, cmd)

	case KeyboardMsg:
		if c := m.active(); c != nil {
			m.render()
			c.HandleKeyboard(msg.Rect)
		}

	case PresentMsg:
		if msg.Controller != nil {
			msg.Controller.Present(m.stage)
		}

	case fadeInDoneMsg:
		if msg.gen == m.stage.gen && m.stage.phase == phaseAppearing {
			m.stage.phase = phaseShown
			m.logger.Debug(m.ctx, "dialog shown", "title", m.stage.current.Title())
			var cmd tea.Cmd
			m, cmd = m.setFocus(0)
			cmds = append(cmds, cmd)
		}

	case fadeOutDoneMsg:
		if msg.gen == m.stage.gen && m.stage.phase == phaseDisappearing {
			m.focus = -1
			m.hover = -1
			m.stage.finishRemoval()
			m.logger.Debug(m.ctx, "dialog removed", "idle", m.stage.Idle())
			if m.quitWhenIdle && m.stage.Idle() {
				m.quitting = true
				cmds = append(cmds, tea.Quit)
			}
		}

	default:
		if field := m.focusedInput(); field != nil {
			cmds = append(cmds, field.Update(msg))
		}
	}

	cmds = append(cmds, m.stage.drain()...)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	c := m.active()
	if c == nil {
		return m, nil
	}
	field := m.focusedInput()

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case field == nil && key.Matches(msg, m.keys.Right):
		return m.moveFocus(1)
	case field == nil && key.Matches(msg, m.keys.Left):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Tap):
		if field != nil {
			return m.moveFocus(1)
		}
		if i := m.focusedButton(); i >= 0 {
			c.TapButton(i)
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		if i := c.CancelIndex(); i >= 0 {
			c.TapButton(i)
		} else {
			c.DismissFromBackground()
		}
		return m, nil
	}

	if field != nil {
		return m, field.Update(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	c := m.active()
	if c == nil {
		return m, nil
	}
	p := geometry.Pt(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hover = c.ButtonAt(p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if kb, ok := m.keyboardRect(); ok && kb.Contains(p) {
			return m, nil
		}
		if i := c.ButtonAt(p); i >= 0 {
			c.TapButton(i)
			return m, nil
		}
		if i := c.InputAt(p); i >= 0 {
			return m.setFocus(i)
		}
		c.HandleBackgroundTap(p)
	}
	return m, nil
}

// moveFocus steps the focus ring by delta, wrapping at both ends.
func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	inputs, buttons := m.focusables()
	n := inputs + buttons
	if n == 0 {
		return m, nil
	}
	next := m.focus + delta
	if m.focus < 0 && delta < 0 {
		next = n - 1
	}
	return m.setFocus(((next % n) + n) % n)
}

// setFocus focuses element i of the ring and updates the keyboard.
func (m Model) setFocus(i int) (Model, tea.Cmd) {
	c := m.stage.current
	if c == nil {
		return m, nil
	}
	inputs, buttons := m.focusables()
	if i < 0 || i >= inputs+buttons {
		i = -1
	}
	m.focus = i
	m.hover = -1

	var cmd tea.Cmd
	for idx, field := range c.InputFields() {
		if idx == i {
			cmd = field.Focus()
			continue
		}
		field.Blur()
	}
	m.syncKeyboard()
	return m, cmd
}

// syncKeyboard reports the keyboard panel to the controller. The panel is
// up while an input field has focus.
func (m Model) syncKeyboard() {
	c := m.active()
	if c == nil {
		return
	}
	m.render()
	if kb, ok := m.keyboardRect(); ok {
		c.HandleKeyboard(&kb)
		return
	}
	c.HandleKeyboard(nil)
}
