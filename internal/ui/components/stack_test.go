package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackChildWidthsSplitsAroundFixedChildren(t *testing.T) {
	t.Parallel()

	s := HStack(NewButton("A"), VerticalDivider(1), NewButton("B"))

	assert.Equal(t, []int{10, 1, 10}, s.ChildWidths(21))
	assert.Equal(t, []int{10, 1, 11}, s.ChildWidths(22))
	assert.Nil(t, s.ChildWidths(0))
}

func TestStackChildWidthsWithGap(t *testing.T) {
	t.Parallel()

	s := HStack(NewButton("A"), NewButton("B"), NewButton("C")).WithGap(1)
	assert.Equal(t, []int{6, 6, 6}, s.ChildWidths(20))
}

func TestHorizontalStackRendersEqualHalves(t *testing.T) {
	t.Parallel()

	s := HStack(NewButton("A"), VerticalDivider(1), NewButton("B"))
	out := ansi.Strip(s.ViewWithContext(DefaultContext().WithWidth(21)))

	require.Equal(t, 1, lipgloss.Height(out))
	assert.Equal(t, 21, lipgloss.Width(out))
	assert.Equal(t, 10, ansi.StringWidth(out[:strings.Index(out, "│")]))
	assert.Equal(t, "A", strings.TrimSpace(out[:strings.Index(out, "│")]))
}

func TestVerticalStackFillsWidth(t *testing.T) {
	t.Parallel()

	s := VStack(NewText("one"), HorizontalDivider(), NewText("two")).WithGap(1)
	out := ansi.Strip(s.ViewWithContext(DefaultContext().WithWidth(8)))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 8, ansi.StringWidth(line))
	}
	assert.Equal(t, strings.Repeat("─", 8), lines[2])
	assert.Equal(t, "two", strings.TrimSpace(lines[4]))
}

func TestStackSkipsNilChildren(t *testing.T) {
	t.Parallel()

	s := VStack(nil, NewText("x"), nil)
	assert.Equal(t, "x", ansi.Strip(s.View()))
	assert.Len(t, s.Children(), 3)
	assert.Equal(t, DirectionVertical, s.Direction())
}

func TestVerticalStackWithoutGapStacksRows(t *testing.T) {
	t.Parallel()

	s := VStack(NewText("one"), HorizontalDivider(), NewText("two"))
	out := ansi.Strip(s.ViewWithContext(DefaultContext().WithWidth(5)))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "one", strings.TrimSpace(lines[0]))
	assert.Equal(t, strings.Repeat("─", 5), lines[1])
	assert.Equal(t, "two", strings.TrimSpace(lines[2]))
}
