package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tealert/internal/tui"
)

const okDefinition = `title: Saved
message: Your changes were saved.
buttons:
  - label: OK
    tag: 7
`

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// useScriptedProgram replaces the program runner with one that sizes the
// screen to 80x24, then feeds msgs to the model, running every command
// each update returns. The model is drawn before each msg, as the
// renderer would.
func useScriptedProgram(t *testing.T, msgs ...tea.Msg) {
	t.Helper()
	original := programRunner
	t.Cleanup(func() { programRunner = original })

	programRunner = func(_ context.Context, m tui.Model, _ io.Reader, _ io.Writer) (tui.Model, error) {
		m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
		m = pump(t, m, m.Init())
		for _, msg := range msgs {
			if m.Quitting() {
				break
			}
			m.View()
			m = step(t, m, msg)
		}
		return m, nil
	}
}

func step(t *testing.T, m tui.Model, msg tea.Msg) tui.Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok)
	return pump(t, model, cmd)
}

func pump(t *testing.T, m tui.Model, cmd tea.Cmd) tui.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "commands did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			return m
		default:
			updated, cmd := m.Update(msg)
			model, ok := updated.(tui.Model)
			require.True(t, ok)
			m = model
			queue = append(queue, cmd)
		}
	}
	return m
}
