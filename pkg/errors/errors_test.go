package errors

import (
	stdErrors "errors"
	"fmt"
	"image"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("login.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "login.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "cannot read definition login.yaml (line 12): unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("login.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "cannot read definition login.yaml: no such file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("buttons[1].style", "second cancel button", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "buttons[1].style", validationErr.Field)
	require.Contains(t, validationErr.Message, "second cancel button")
	require.Equal(t, "invalid dialog: nothing", NewValidationError("", "nothing", nil).Error())
}

func TestRuntimeErrorIncludesCommand(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("program killed")
	err := NewRuntimeError("show", underlying)

	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	require.Equal(t, "show", runtimeErr.Command)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "show: dialog program stopped: program killed", err.Error())
}

func TestImageErrorIncludesPathAndFormat(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bmp: invalid format")
	err := NewImageError("art/Logo.BMP", underlying)

	var imageErr *ImageError
	require.ErrorAs(t, err, &imageErr)
	require.Equal(t, "art/Logo.BMP", imageErr.Path)
	require.Equal(t, "bmp", imageErr.Format)
	require.True(t, stdErrors.Is(err, underlying))
	require.False(t, imageErr.Missing())
	require.False(t, imageErr.Unsupported())
	require.Equal(t, "bmp image art/Logo.BMP could not be decoded: bmp: invalid format", err.Error())
}

func TestImageErrorDescribesCause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		err         error
		missing     bool
		unsupported bool
		want        string
	}{
		{
			name:    "missing file",
			path:    "sunset.png",
			err:     fmt.Errorf("open image: %w", &fs.PathError{Op: "open", Path: "sunset.png", Err: fs.ErrNotExist}),
			missing: true,
			want:    "png image sunset.png not found",
		},
		{
			name:        "unknown format",
			path:        "notes.txt",
			err:         fmt.Errorf("decode image: %w", image.ErrFormat),
			unsupported: true,
			want:        "txt image notes.txt is not a png, jpeg, gif, bmp or webp file",
		},
		{
			name: "no extension",
			path: "",
			err:  stdErrors.New("truncated"),
			want: "image could not be decoded: truncated",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var imageErr *ImageError
			require.ErrorAs(t, NewImageError(tt.path, tt.err), &imageErr)
			require.Equal(t, tt.missing, imageErr.Missing())
			require.Equal(t, tt.unsupported, imageErr.Unsupported())
			require.Equal(t, tt.want, imageErr.Error())
		})
	}
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var r *RuntimeError
	var i *ImageError
	require.Empty(t, p.Error())
	require.Empty(t, v.Error())
	require.Empty(t, r.Error())
	require.Empty(t, i.Error())
	require.Nil(t, p.Unwrap())
	require.Nil(t, i.Unwrap())
	require.False(t, i.Missing())
}
