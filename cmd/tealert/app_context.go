package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tealert/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/tealert/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tealert/internal/ports"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
)

const logBufferLimit = 512

// AppContext bundles the services a command creates at startup.
//
// While a dialog owns the screen, log entries are held in a buffer and
// written to the sink when the command finishes. The sink is the log file
// when one is given, stderr in verbose mode, and nothing otherwise.
type AppContext struct {
	Context   context.Context
	Logger    ports.Logger
	Publisher *events.LoggingPublisher
	Theme     components.Theme

	buffer *logging.Buffer
	sink   ports.Logger
	closer io.Closer
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, component string) (*AppContext, error) {
	appearance, err := components.ParseAppearance(flags.appearance)
	if err != nil {
		return nil, fmt.Errorf("--appearance: %w", err)
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app := &AppContext{
		Context: logging.NewCorrelatedContext(ctx),
		Theme:   components.ThemeFor(appearance),
		buffer:  logging.NewBuffer(logBufferLimit),
	}

	switch {
	case flags.logFile != "":
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sink, err := logging.New(logging.Options{Writer: file, Level: level, Layer: "cli", Component: component})
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		app.sink = sink
		app.closer = file
	case flags.verbose:
		sink, err := logging.New(logging.Options{
			Writer:    cmd.ErrOrStderr(),
			Level:     level,
			Console:   true,
			Layer:     "cli",
			Component: component,
		})
		if err != nil {
			return nil, err
		}
		app.sink = sink
	default:
		app.sink = logging.NewNoOpLogger()
	}

	app.Logger = app.buffer.Logger().With("command", component)
	app.Publisher = events.NewLoggingPublisher(app.Logger)
	return app, nil
}

// Close writes the buffered entries to the sink and releases the log file.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	a.buffer.Flush(a.sink)
	if dropped := a.buffer.Dropped(); dropped > 0 {
		a.sink.Warn(a.Context, "log entries dropped", "count", dropped)
	}
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
