package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Appearance selects which half of an adaptive colour is used.
type Appearance int

const (
	// AppearanceAuto follows the terminal background.
	AppearanceAuto Appearance = iota
	AppearanceLight
	AppearanceDark
)

var appearanceNames = map[Appearance]string{
	AppearanceAuto:  "auto",
	AppearanceLight: "light",
	AppearanceDark:  "dark",
}

func (a Appearance) String() string {
	if name, ok := appearanceNames[a]; ok {
		return name
	}
	return fmt.Sprintf("appearance(%d)", int(a))
}

// ParseAppearance converts "auto", "light" or "dark".
func ParseAppearance(value string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return AppearanceAuto, nil
	case "light":
		return AppearanceLight, nil
	case "dark":
		return AppearanceDark, nil
	default:
		return AppearanceAuto, fmt.Errorf("unknown appearance %q", value)
	}
}

// Hue is one of the nine named dynamic colours a button label may use.
// HueNone keeps the colour implied by the button variant.
type Hue int

const (
	HueNone Hue = iota
	HueRed
	HueOrange
	HueYellow
	HueGreen
	HueTeal
	HueBlue
	HueIndigo
	HuePurple
	HuePink
)

var hueNames = [...]string{"", "red", "orange", "yellow", "green", "teal", "blue", "indigo", "purple", "pink"}

// Hues lists every named hue in palette order.
func Hues() []Hue {
	return []Hue{HueRed, HueOrange, HueYellow, HueGreen, HueTeal, HueBlue, HueIndigo, HuePurple, HuePink}
}

func (h Hue) String() string {
	if h < 0 || int(h) >= len(hueNames) {
		return fmt.Sprintf("hue(%d)", int(h))
	}
	return hueNames[h]
}

// ParseHue converts a hue name. The empty string yields HueNone.
func ParseHue(name string) (Hue, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range hueNames {
		if candidate == name {
			return Hue(i), nil
		}
	}
	return HueNone, fmt.Errorf("unknown colour %q", name)
}

// HuePalette holds the light and dark value of every named hue.
type HuePalette [len(hueNames)]lipgloss.AdaptiveColor

// Palette holds the semantic colours a dialog is drawn with.
type Palette struct {
	Title       lipgloss.AdaptiveColor
	Message     lipgloss.AdaptiveColor
	Placeholder lipgloss.AdaptiveColor
	Card        lipgloss.AdaptiveColor
	Sub         lipgloss.AdaptiveColor
	Divider     lipgloss.AdaptiveColor
	Button      lipgloss.AdaptiveColor
	Highlighted lipgloss.AdaptiveColor
	Scrim       lipgloss.AdaptiveColor
	Default     lipgloss.AdaptiveColor
	Destructive lipgloss.AdaptiveColor
	Cancel      lipgloss.AdaptiveColor
}

// Role selects one semantic colour from a Palette.
type Role func(Palette) lipgloss.AdaptiveColor

var (
	RoleTitle       Role = func(p Palette) lipgloss.AdaptiveColor { return p.Title }
	RoleMessage     Role = func(p Palette) lipgloss.AdaptiveColor { return p.Message }
	RolePlaceholder Role = func(p Palette) lipgloss.AdaptiveColor { return p.Placeholder }
	RoleCard        Role = func(p Palette) lipgloss.AdaptiveColor { return p.Card }
	RoleSub         Role = func(p Palette) lipgloss.AdaptiveColor { return p.Sub }
	RoleDivider     Role = func(p Palette) lipgloss.AdaptiveColor { return p.Divider }
	RoleButton      Role = func(p Palette) lipgloss.AdaptiveColor { return p.Button }
	RoleHighlighted Role = func(p Palette) lipgloss.AdaptiveColor { return p.Highlighted }
	RoleScrim       Role = func(p Palette) lipgloss.AdaptiveColor { return p.Scrim }
	RoleDefault     Role = func(p Palette) lipgloss.AdaptiveColor { return p.Default }
	RoleDestructive Role = func(p Palette) lipgloss.AdaptiveColor { return p.Destructive }
	RoleCancel      Role = func(p Palette) lipgloss.AdaptiveColor { return p.Cancel }
)

// BorderSet groups the borders used by cards.
type BorderSet struct {
	Card lipgloss.Border
}

// TypographyScale holds text presets.
type TypographyScale struct {
	Title     lipgloss.Style
	Message   lipgloss.Style
	Button    lipgloss.Style
	Preferred lipgloss.Style
}

// Theme is an immutable set of colours, borders and typography. Derive
// variants with the With* methods.
type Theme struct {
	Appearance Appearance
	Palette    Palette
	Hues       HuePalette
	Borders    BorderSet
	Typography TypographyScale
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultHues returns the nine dynamic hues.
func DefaultHues() HuePalette {
	var hues HuePalette
	hues[HueRed] = ac("#e53935", "#f44336")
	hues[HueOrange] = ac("#ff5722", "#ff8a65")
	hues[HueYellow] = ac("#ffc107", "#ffd54f")
	hues[HueGreen] = ac("#4caf50", "#81c784")
	hues[HueTeal] = ac("#009688", "#4db6ac")
	hues[HueBlue] = ac("#2196f3", "#64b5f6")
	hues[HueIndigo] = ac("#3f51b5", "#7986cb")
	hues[HuePurple] = ac("#9c27b0", "#ba68c8")
	hues[HuePink] = ac("#e91e63", "#f06292")
	return hues
}

// DefaultTheme follows the terminal background.
func DefaultTheme() Theme {
	hues := DefaultHues()

	return Theme{
		Appearance: AppearanceAuto,
		Palette: Palette{
			Title:       ac("#000000", "#ffffff"),
			Message:     ac("#6c6c70", "#aeaeb2"),
			Placeholder: ac("#aeaeb2", "#636366"),
			Card:        ac("#f2f2f7", "#1c1c1e"),
			Sub:         ac("#ffffff", "#2c2c2e"),
			Divider:     ac("#c6c6c8", "#38383a"),
			Button:      ac("#f2f2f7", "#1c1c1e"),
			Highlighted: ac("#e5e5ea", "#2c2c2e"),
			Scrim:       ac("#8e8e93", "#48484a"),
			Default:     hues[HueBlue],
			Destructive: hues[HueRed],
			Cancel:      ac("#8e8e93", "#8e8e93"),
		},
		Hues:    hues,
		Borders: BorderSet{Card: lipgloss.RoundedBorder()},
		Typography: TypographyScale{
			Title:     lipgloss.NewStyle().Bold(true),
			Message:   lipgloss.NewStyle(),
			Button:    lipgloss.NewStyle(),
			Preferred: lipgloss.NewStyle().Bold(true),
		},
	}
}

// LightTheme pins every colour to its light value.
func LightTheme() Theme {
	return DefaultTheme().WithAppearance(AppearanceLight)
}

// DarkTheme pins every colour to its dark value.
func DarkTheme() Theme {
	return DefaultTheme().WithAppearance(AppearanceDark)
}

// ThemeFor returns the default theme for an appearance.
func ThemeFor(a Appearance) Theme {
	return DefaultTheme().WithAppearance(a)
}

// WithAppearance returns a copy of the theme using a.
func (t Theme) WithAppearance(a Appearance) Theme {
	t.Appearance = a
	return t
}

// Resolve picks the concrete colour for the theme appearance.
func (t Theme) Resolve(c lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	switch t.Appearance {
	case AppearanceLight:
		return lipgloss.Color(c.Light)
	case AppearanceDark:
		return lipgloss.Color(c.Dark)
	default:
		return c
	}
}

// Color resolves a semantic role.
func (t Theme) Color(role Role) lipgloss.TerminalColor {
	return t.Resolve(role(t.Palette))
}

// Hue resolves a named hue. HueNone resolves to the default button colour.
func (t Theme) Hue(h Hue) lipgloss.TerminalColor {
	if h <= HueNone || int(h) >= len(t.Hues) {
		return t.Color(RoleDefault)
	}
	return t.Resolve(t.Hues[h])
}

// Foreground sets the text colour from a role.
func Foreground(role Role) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Color(role))
	}
}

// Background sets the fill colour from a role.
func Background(role Role) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(theme.Color(role))
	}
}

// BorderForeground colours a border from a role.
func BorderForeground(role Role) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(theme.Color(role))
	}
}

// HueForeground sets the text colour from a named hue.
func HueForeground(h Hue) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Hue(h))
	}
}

// TitleStyle is the title text preset.
func TitleStyle() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.Title).Foreground(theme.Color(RoleTitle))
	}
}

// MessageStyle is the message text preset.
func MessageStyle() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.Message).Foreground(theme.Color(RoleMessage))
	}
}

// CardStyle is the filled, bordered card preset.
func CardStyle() []StyleFunc {
	return []StyleFunc{
		Background(RoleCard),
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Border(theme.Borders.Card)
		},
		BorderForeground(RoleDivider),
	}
}
