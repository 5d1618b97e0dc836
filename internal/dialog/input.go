package dialog

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

// InputField is a one-row text entry of an alert. Callers configure the
// exported fields from the func passed to Controller.AddInputField; they
// are applied to the underlying textinput before each use.
type InputField struct {
	Placeholder string
	Tag         int
	// Secure masks the value.
	Secure    bool
	CharLimit int

	input textinput.Model
}

func newInputField() *InputField {
	ti := textinput.New()
	ti.Prompt = ""
	return &InputField{input: ti}
}

func (f *InputField) sync() {
	f.input.Placeholder = f.Placeholder
	f.input.CharLimit = f.CharLimit
	if f.Secure {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
	} else {
		f.input.EchoMode = textinput.EchoNormal
	}
}

// Value returns the entered text.
func (f *InputField) Value() string {
	return f.input.Value()
}

// SetValue replaces the entered text, honouring CharLimit.
func (f *InputField) SetValue(value string) {
	f.sync()
	f.input.SetValue(value)
}

// Focus gives the field keyboard focus.
func (f *InputField) Focus() tea.Cmd {
	f.sync()
	return f.input.Focus()
}

// Blur removes keyboard focus.
func (f *InputField) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has keyboard focus.
func (f *InputField) Focused() bool {
	return f.input.Focused()
}

// Update feeds a message to the field. Only focused fields react to keys.
func (f *InputField) Update(msg tea.Msg) tea.Cmd {
	f.sync()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the field with the default context.
func (f *InputField) View() string {
	return f.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the field as a single row on the sub background
// with one cell of left padding.
func (f *InputField) ViewWithContext(ctx components.RenderContext) string {
	f.sync()
	theme := ctx.Theme
	bg := theme.Color(components.RoleSub)

	f.input.TextStyle = lipgloss.NewStyle().Foreground(theme.Color(components.RoleTitle)).Background(bg)
	f.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Color(components.RolePlaceholder)).Background(bg)
	f.input.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Color(components.RoleDefault))

	style := lipgloss.NewStyle().Background(bg).PaddingLeft(1).MaxHeight(1)
	if width := ctx.Constraints.Width(); width > 0 {
		style = style.Width(width)
		f.input.Width = max(width-2, 1)
	}
	return style.Render(f.input.View())
}
