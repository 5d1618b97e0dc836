package dialog

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tealert/internal/geometry"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

var screen = geometry.Size{W: 80, H: 24}

func renderCtx() components.RenderContext {
	return components.NewContext(components.DarkTheme())
}

// recordingHost records presentations and holds removal completions until
// finish is called, unless auto is set.
type recordingHost struct {
	shown   []*Controller
	pending []func()
	auto    bool
}

func (h *recordingHost) Show(c *Controller) {
	h.shown = append(h.shown, c)
}

func (h *recordingHost) Remove(_ *Controller, done func()) {
	if h.auto {
		done()
		return
	}
	h.pending = append(h.pending, done)
}

func (h *recordingHost) finish() {
	pending := h.pending
	h.pending = nil
	for _, done := range pending {
		done()
	}
}

func lines(block Block) []string {
	return strings.Split(ansi.Strip(block.Content), "\n")
}

// cellsAt returns the text a rect covers within a card.
func cellsAt(t *testing.T, block Block, r geometry.Rect) string {
	t.Helper()
	rows := lines(block)
	row := r.Y - block.Rect.Y
	require.GreaterOrEqual(t, row, 0)
	require.Less(t, row, len(rows))
	col := r.X - block.Rect.X
	return ansi.TruncateLeft(ansi.Truncate(rows[row], col+r.W, ""), col, "")
}

func labels(buttons []ButtonSpec) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = b.Label
	}
	return out
}
