package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tealert/internal/tui"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

var errNotTerminal = errors.New("tealert needs an interactive terminal")

// programRunner runs a host until it quits and returns its final state.
var programRunner = runProgram

func runProgram(ctx context.Context, m tui.Model, in io.Reader, out io.Writer) (tui.Model, error) {
	if !isTerminal(out) {
		return m, errNotTerminal
	}

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(tui.Model); ok {
		return fm, nil
	}
	return m, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func hostOptions(app *AppContext, out io.Writer, backdrop string) []tui.Option {
	opts := []tui.Option{
		tui.WithTheme(app.Theme),
		tui.WithBackdrop(backdrop),
		tui.WithLogger(app.Logger),
		tui.WithContext(app.Context),
		tui.QuitWhenIdle(),
	}
	if f, ok := out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			opts = append(opts, tui.WithSize(w, h))
		}
	}
	return opts
}

// renderBackdrop draws the screen shown behind the scrim.
func renderBackdrop(theme components.Theme, title string, lines ...string) string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color(components.RoleTitle)).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(theme.Color(components.RoleMessage)).
		Padding(0, 2)
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, body.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", strings.Join(rendered, "\n"))
}
