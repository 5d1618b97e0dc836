package config

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/ports"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

type recordedLog struct {
	level string
	msg   string
	kv    []interface{}
}

type recordingLogger struct {
	entries *[]recordedLog
}

func newRecordingLogger() recordingLogger {
	return recordingLogger{entries: &[]recordedLog{}}
}

func (l recordingLogger) add(level, msg string, kv []interface{}) {
	*l.entries = append(*l.entries, recordedLog{level: level, msg: msg, kv: kv})
}

func (l recordingLogger) Debug(_ context.Context, msg string, kv ...interface{}) { l.add("debug", msg, kv) }
func (l recordingLogger) Info(_ context.Context, msg string, kv ...interface{})  { l.add("info", msg, kv) }
func (l recordingLogger) Warn(_ context.Context, msg string, kv ...interface{})  { l.add("warn", msg, kv) }
func (l recordingLogger) Error(_ context.Context, msg string, kv ...interface{}) { l.add("error", msg, kv) }
func (l recordingLogger) With(...interface{}) ports.Logger                       { return l }

func writePNG(t *testing.T, dir, name string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestBuildAlertFromDefinition(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePNG(t, dir, "logo.png")
	path := filepath.Join(dir, "login.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Sign in
image: logo.png
dismiss_on_background_tap: false
inputs:
  - placeholder: Username
    tag: 1
  - placeholder: Password
    tag: 2
    secure: true
    char_limit: 32
buttons:
  - label: Cancel
    style: cancel
  - label: Login
    style: preferred
    tag: 7
    color: indigo
`), 0o600))

	def, err := ParseFile(path)
	require.NoError(t, err)

	var tapped []dialog.ButtonSpec
	c, err := Build(def, WithButtonHandler(func(b dialog.ButtonSpec) { tapped = append(tapped, b) }))
	require.NoError(t, err)

	assert.Equal(t, dialog.StyleAlert, c.Style())
	assert.Equal(t, "Sign in", c.Title())
	assert.False(t, c.DismissOnBackgroundTap())
	assert.False(t, c.Image().IsZero())
	require.Len(t, c.InputFields(), 2)
	assert.True(t, c.InputFields()[1].Secure)
	assert.Equal(t, 32, c.InputFields()[1].CharLimit)

	c.Present(&immediateHost{})
	buttons := c.Buttons()
	require.Len(t, buttons, 2)
	assert.Equal(t, "Cancel", buttons[0].Label, "a lone cancel goes first")
	assert.Equal(t, components.HueIndigo, buttons[1].Color)
	assert.Equal(t, 7, buttons[1].Tag)

	require.True(t, c.TapButton(1))
	require.Len(t, tapped, 1)
	assert.Equal(t, "Login", tapped[0].Label)
}

func TestBuildOmitsUnreadableImage(t *testing.T) {
	t.Parallel()

	logger := newRecordingLogger()
	def, err := Parse(filepath.Join(t.TempDir(), "sheet.yaml"), []byte(`style: action_sheet
title: Share
image: missing.png
buttons:
  - label: Copy
`))
	require.NoError(t, err)

	c, err := Build(def, WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, c.Image().IsZero())

	var warned bool
	for _, e := range *logger.entries {
		if e.level == "warn" && e.msg == "image omitted" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestLoadImageReportsImageError(t *testing.T) {
	t.Parallel()

	def := &Definition{Image: "nope.png", path: "/tmp/defs/x.yaml"}
	assert.Equal(t, "/tmp/defs/nope.png", ImagePath(def))

	_, err := LoadImage(def)
	var imageErr *tealerterrors.ImageError
	require.ErrorAs(t, err, &imageErr)
	assert.Equal(t, "/tmp/defs/nope.png", imageErr.Path)
	assert.Equal(t, "png", imageErr.Format)
	assert.True(t, imageErr.Missing())

	ref, err := LoadImage(&Definition{})
	require.NoError(t, err)
	assert.True(t, ref.IsZero())
}

func TestBuildRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := Build(nil)
	var validationErr *tealerterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestBuildReportsControllerErrors(t *testing.T) {
	t.Parallel()

	def := &Definition{Buttons: []Button{
		{Label: "Cancel", Style: "cancel"},
		{Label: "Close", Style: "cancel"},
	}}
	_, err := Build(def)
	require.Error(t, err)
	assert.True(t, dialog.IsConfigError(err, dialog.ErrCodeDuplicateCancel))
}

type immediateHost struct{}

func (immediateHost) Show(*dialog.Controller)                {}
func (immediateHost) Remove(_ *dialog.Controller, done func()) { done() }
