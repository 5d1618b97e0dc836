// Package config reads dialog definition files and builds controllers from
// them.
package config

// Definition is one dialog described in YAML.
type Definition struct {
	Style                  string   `yaml:"style" validate:"omitempty,dialog_style"`
	Title                  string   `yaml:"title,omitempty" validate:"max=200"`
	Message                string   `yaml:"message,omitempty" validate:"max=2000"`
	Image                  string   `yaml:"image,omitempty"`
	DismissOnBackgroundTap *bool    `yaml:"dismiss_on_background_tap,omitempty"`
	Inputs                 []Input  `yaml:"inputs,omitempty" validate:"omitempty,max=8,dive"`
	Buttons                []Button `yaml:"buttons,omitempty" validate:"omitempty,max=16,dive"`

	// path is the file the definition was read from, used to resolve a
	// relative image path.
	path string
}

// Input is one text field of an alert.
type Input struct {
	Placeholder string `yaml:"placeholder,omitempty" validate:"max=100"`
	Tag         int    `yaml:"tag,omitempty"`
	Secure      bool   `yaml:"secure,omitempty"`
	CharLimit   int    `yaml:"char_limit,omitempty" validate:"min=0,max=1024"`
}

// Button is one action of a dialog.
type Button struct {
	Label string `yaml:"label" validate:"required,max=60"`
	Style string `yaml:"style,omitempty" validate:"omitempty,button_style"`
	Tag   int    `yaml:"tag,omitempty"`
	Color string `yaml:"color,omitempty" validate:"omitempty,hue"`
}

// Path returns the file the definition was parsed from, if any.
func (d *Definition) Path() string {
	return d.path
}

// DismissesOnBackgroundTap reports the background tap setting, defaulting
// to true.
func (d *Definition) DismissesOnBackgroundTap() bool {
	if d.DismissOnBackgroundTap == nil {
		return true
	}
	return *d.DismissOnBackgroundTap
}
