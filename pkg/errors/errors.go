package errors

import (
	stdErrors "errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"
	"strings"
)

// ParseError is a definition file that could not be read or is not valid
// YAML. Line is 1-based and zero when unknown.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("cannot read definition %s (line %d): %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("cannot read definition %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a definition that parsed but describes a dialog that
// cannot be built. Field is the YAML path of the offending value, such as
// buttons[1].style.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid dialog: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid dialog: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RuntimeError is a terminal program that stopped before its dialogs were
// dismissed.
type RuntimeError struct {
	Command string
	Err     error
}

// NewRuntimeError constructs a RuntimeError.
func NewRuntimeError(command string, err error) error {
	return &RuntimeError{Command: command, Err: err}
}

func (e *RuntimeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Command != "" {
		return fmt.Sprintf("%s: dialog program stopped: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("dialog program stopped: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RuntimeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ImageError is a definition image that could not be loaded. Format is the
// lower-case file extension without its dot, or empty.
type ImageError struct {
	Path    string
	Format  string
	Message string
	Err     error
}

// NewImageError constructs an ImageError for the given path.
func NewImageError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return &ImageError{Path: path, Format: format, Message: message, Err: err}
}

// Missing reports whether the file does not exist.
func (e *ImageError) Missing() bool {
	return e != nil && stdErrors.Is(e.Err, fs.ErrNotExist)
}

// Unsupported reports whether no registered decoder recognised the file.
func (e *ImageError) Unsupported() bool {
	return e != nil && stdErrors.Is(e.Err, image.ErrFormat)
}

func (e *ImageError) Error() string {
	if e == nil {
		return ""
	}
	subject := "image"
	if e.Format != "" {
		subject = e.Format + " image"
	}
	if e.Path != "" {
		subject += " " + e.Path
	}
	switch {
	case e.Missing():
		return subject + " not found"
	case e.Unsupported():
		return subject + " is not a png, jpeg, gif, bmp or webp file"
	}
	return fmt.Sprintf("%s could not be decoded: %s", subject, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ImageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
