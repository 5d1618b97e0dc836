package dialog

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a dialog configuration error.
type ErrorCode string

const (
	ErrCodeDuplicateCancel     ErrorCode = "duplicate_cancel"
	ErrCodeDuplicateImage      ErrorCode = "duplicate_image"
	ErrCodeInputUnsupported    ErrorCode = "input_unsupported"
	ErrCodeConfigurationLocked ErrorCode = "configuration_locked"
)

// ConfigError reports misuse of a controller's configuration API. Two
// ConfigErrors match under errors.Is when their codes are equal.
type ConfigError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Sentinels for errors.Is.
var (
	ErrDuplicateCancel     = &ConfigError{Code: ErrCodeDuplicateCancel, Message: "a dialog can only have one cancel button"}
	ErrDuplicateImage      = &ConfigError{Code: ErrCodeDuplicateImage, Message: "a dialog can only have one image"}
	ErrInputUnsupported    = &ConfigError{Code: ErrCodeInputUnsupported, Message: "input fields require the alert style"}
	ErrConfigurationLocked = &ConfigError{Code: ErrCodeConfigurationLocked, Message: "dialog can no longer be configured"}
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches other ConfigErrors by code.
func (e *ConfigError) Is(target error) bool {
	var other *ConfigError
	if e == nil || !errors.As(target, &other) || other == nil {
		return false
	}
	return e.Code == other.Code
}

// WithContext clones the error with extra metadata.
func (e *ConfigError) WithContext(ctx map[string]interface{}) *ConfigError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &ConfigError{Code: e.Code, Message: e.Message, Context: merged}
}

// IsConfigError reports whether err is a ConfigError with code.
func IsConfigError(err error, code ErrorCode) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Code == code
}
