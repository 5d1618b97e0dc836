package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of terminal rows that blocks are composited
// onto. Rows may contain ANSI styling; all cutting is width-aware.
type Canvas struct {
	width  int
	height int
	rows   []string
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.rows = make([]string, c.height)
	for i := range c.rows {
		c.rows[i] = strings.Repeat(" ", c.width)
	}
	return c
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.height
}

// Backdrop replaces every row with content stripped of its own styling and
// re-rendered with style. Missing rows are blank; long rows are cut.
func (c *Canvas) Backdrop(content string, style lipgloss.Style) {
	src := strings.Split(content, "\n")
	for i := range c.rows {
		var line string
		if i < len(src) {
			line = ansi.Truncate(ansi.Strip(src[i]), c.width, "")
		}
		if pad := c.width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		c.rows[i] = style.Render(line)
	}
}

// Draw composites block with its top-left cell at (x, y). Parts outside the
// canvas are clipped.
func (c *Canvas) Draw(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= c.width {
			continue
		}
		line = ansi.Truncate(line, c.width-col, "")
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}

		bg := c.rows[row]
		left := ansi.Truncate(bg, col, "")
		right := ansi.TruncateLeft(bg, col+w, "")
		c.rows[row] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}
}

// Row returns one row, or "" when out of range.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	return c.rows[y]
}

// String joins the rows.
func (c *Canvas) String() string {
	return strings.Join(c.rows, "\n")
}
