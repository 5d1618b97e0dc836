package logging

import (
	"context"

	"github.com/alexisbeaulieu97/tealert/internal/ports"
)

// NoOpLogger discards every entry. It is the default logger of a dialog
// controller.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (n *NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (n *NoOpLogger) Error(context.Context, string, ...interface{}) {}

// With returns n.
func (n *NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a ports.Logger that discards all entries.
func NewNoOpLogger() ports.Logger {
	return &NoOpLogger{}
}
