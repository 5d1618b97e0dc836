package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHuesHaveLightAndDarkValues(t *testing.T) {
	t.Parallel()

	want := map[Hue][2]string{
		HueRed:    {"#e53935", "#f44336"},
		HueOrange: {"#ff5722", "#ff8a65"},
		HueYellow: {"#ffc107", "#ffd54f"},
		HueGreen:  {"#4caf50", "#81c784"},
		HueTeal:   {"#009688", "#4db6ac"},
		HueBlue:   {"#2196f3", "#64b5f6"},
		HueIndigo: {"#3f51b5", "#7986cb"},
		HuePurple: {"#9c27b0", "#ba68c8"},
		HuePink:   {"#e91e63", "#f06292"},
	}

	hues := DefaultHues()
	require.Len(t, Hues(), len(want))
	for _, h := range Hues() {
		assert.Equal(t, want[h][0], hues[h].Light, h.String())
		assert.Equal(t, want[h][1], hues[h].Dark, h.String())
	}
}

func TestThemeResolveFollowsAppearance(t *testing.T) {
	t.Parallel()

	c := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}

	assert.Equal(t, c, DefaultTheme().Resolve(c))
	assert.Equal(t, lipgloss.Color("#ffffff"), LightTheme().Resolve(c))
	assert.Equal(t, lipgloss.Color("#000000"), DarkTheme().Resolve(c))
	assert.Equal(t, lipgloss.Color("#000000"), ThemeFor(AppearanceDark).Resolve(c))
}

func TestThemeColorsByRole(t *testing.T) {
	t.Parallel()

	light := LightTheme()
	assert.Equal(t, lipgloss.Color("#2196f3"), light.Color(RoleDefault))
	assert.Equal(t, lipgloss.Color("#e53935"), light.Color(RoleDestructive))
	assert.Equal(t, lipgloss.Color("#8e8e93"), light.Color(RoleCancel))

	dark := DarkTheme()
	assert.Equal(t, lipgloss.Color("#f44336"), dark.Color(RoleDestructive))
	assert.Equal(t, lipgloss.Color("#7986cb"), dark.Hue(HueIndigo))
	assert.Equal(t, dark.Color(RoleDefault), dark.Hue(HueNone))
}

func TestParseHue(t *testing.T) {
	t.Parallel()

	for _, h := range Hues() {
		parsed, err := ParseHue(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, parsed)
	}

	parsed, err := ParseHue(" Indigo ")
	require.NoError(t, err)
	assert.Equal(t, HueIndigo, parsed)

	parsed, err = ParseHue("")
	require.NoError(t, err)
	assert.Equal(t, HueNone, parsed)

	_, err = ParseHue("magenta")
	require.Error(t, err)
}

func TestParseAppearance(t *testing.T) {
	t.Parallel()

	cases := map[string]Appearance{
		"":      AppearanceAuto,
		"auto":  AppearanceAuto,
		"LIGHT": AppearanceLight,
		"dark":  AppearanceDark,
	}
	for input, want := range cases {
		got, err := ParseAppearance(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseAppearance("sepia")
	require.Error(t, err)
	assert.Equal(t, "dark", AppearanceDark.String())
}
