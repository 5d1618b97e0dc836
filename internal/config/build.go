package config

import (
	"context"
	"path/filepath"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tealert/internal/ports"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

// BuildOption configures Build.
type BuildOption func(*builder)

type builder struct {
	ctx       context.Context
	logger    ports.Logger
	publisher ports.EventPublisher
	onTap     func(dialog.ButtonSpec)
}

// WithLogger sets the logger passed to the controller.
func WithLogger(logger ports.Logger) BuildOption {
	return func(b *builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPublisher sets the publisher passed to the controller.
func WithPublisher(publisher ports.EventPublisher) BuildOption {
	return func(b *builder) {
		b.publisher = publisher
	}
}

// WithContext sets the context passed to the controller.
func WithContext(ctx context.Context) BuildOption {
	return func(b *builder) {
		if ctx != nil {
			b.ctx = ctx
		}
	}
}

// WithButtonHandler sets the callback every button runs after dismissal.
func WithButtonHandler(onTap func(dialog.ButtonSpec)) BuildOption {
	return func(b *builder) {
		b.onTap = onTap
	}
}

// Build creates a controller from a validated definition. An image that
// cannot be loaded is logged and left out.
func Build(def *Definition, opts ...BuildOption) (*dialog.Controller, error) {
	if def == nil {
		return nil, tealerterrors.NewValidationError("definition", "definition is nil", nil)
	}
	b := &builder{ctx: context.Background(), logger: logging.NewNoOpLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	style, err := dialog.ParseStyle(def.Style)
	if err != nil {
		return nil, tealerterrors.NewValidationError("style", err.Error(), err)
	}
	c := dialog.New(def.Title, def.Message, style,
		dialog.WithLogger(b.logger),
		dialog.WithPublisher(b.publisher),
		dialog.WithContext(b.ctx),
	)
	c.SetDismissOnBackgroundTap(def.DismissesOnBackgroundTap())

	if def.Image != "" {
		img, err := LoadImage(def)
		if err != nil {
			b.logger.Warn(b.ctx, "image omitted", "image", def.Image, "error", err)
		} else if err := c.AddImage(img); err != nil {
			return nil, err
		}
	}

	for i := range def.Inputs {
		in := def.Inputs[i]
		err := c.AddInputField(func(f *dialog.InputField) {
			f.Placeholder = in.Placeholder
			f.Tag = in.Tag
			f.Secure = in.Secure
			f.CharLimit = in.CharLimit
		})
		if err != nil {
			return nil, tealerterrors.NewValidationError(fieldForInput(i, "placeholder"), err.Error(), err)
		}
	}

	for i, btn := range def.Buttons {
		spec, err := buttonSpec(btn, b.onTap)
		if err != nil {
			return nil, tealerterrors.NewValidationError(fieldForButton(i, "style"), err.Error(), err)
		}
		if err := c.AddButton(spec); err != nil {
			return nil, tealerterrors.NewValidationError(fieldForButton(i, "style"), err.Error(), err)
		}
	}

	return c, nil
}

func buttonSpec(btn Button, onTap func(dialog.ButtonSpec)) (dialog.ButtonSpec, error) {
	style, err := dialog.ParseButtonStyle(btn.Style)
	if err != nil {
		return dialog.ButtonSpec{}, err
	}
	hue, err := components.ParseHue(btn.Color)
	if err != nil {
		return dialog.ButtonSpec{}, err
	}
	return dialog.NewButton(btn.Label, style, onTap).WithTag(btn.Tag).WithColor(hue), nil
}

// ImagePath resolves the definition's image against the directory of the
// definition file.
func ImagePath(def *Definition) string {
	if def.Image == "" || filepath.IsAbs(def.Image) || def.path == "" {
		return def.Image
	}
	return filepath.Join(filepath.Dir(def.path), def.Image)
}

// LoadImage loads the definition's image.
func LoadImage(def *Definition) (dialog.ImageRef, error) {
	path := ImagePath(def)
	if path == "" {
		return dialog.ImageRef{}, nil
	}
	img, err := dialog.LoadImage(path)
	if err != nil {
		return dialog.ImageRef{}, tealerterrors.NewImageError(path, err)
	}
	return img, nil
}
