package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/tealert/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tealert/internal/ports"
)

type sampleEvent struct {
	eventType string
	payload   interface{}
}

func (e sampleEvent) EventType() string    { return e.eventType }
func (e sampleEvent) Payload() interface{} { return e.payload }

func newLogger(t *testing.T, buf *bytes.Buffer) ports.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "test",
		Component: "publisher",
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newLogger(t, buf))

	ctx := logginginfra.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, sampleEvent{
		eventType: ports.EventDialogPresented,
		payload:   map[string]interface{}{"style": "alert", "buttons": 2},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dialog event", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, ports.EventDialogPresented, entry["event_type"])
	assert.Equal(t, "abc-123", entry["correlation_id"])
	assert.Equal(t, "alert", entry["style"])
}

func TestLoggingPublisherInvokesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var got []string
	_, err := publisher.Subscribe(ports.EventDialogDismissed, func(context.Context, ports.DomainEvent) error {
		got = append(got, "typed")
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventAll, func(_ context.Context, event ports.DomainEvent) error {
		got = append(got, "all:"+event.EventType())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventDialogDismissed}))
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventButtonTapped}))

	assert.Equal(t, []string{"typed", "all:dialog.dismissed", "all:button.tapped"}, got)
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	calls := 0
	sub, err := publisher.Subscribe(ports.EventBackgroundTap, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, publisher.Subscribers(ports.EventBackgroundTap))

	sub.Unsubscribe()
	assert.Zero(t, publisher.Subscribers(ports.EventBackgroundTap))

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventBackgroundTap}))
	assert.Zero(t, calls)
}

func TestLoggingPublisherLogsHandlerFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newLogger(t, buf))

	second := false
	_, _ = publisher.Subscribe(ports.EventButtonTapped, func(context.Context, ports.DomainEvent) error {
		return errors.New("boom")
	})
	_, _ = publisher.Subscribe(ports.EventButtonTapped, func(context.Context, ports.DomainEvent) error {
		second = true
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventButtonTapped, payload: 3}))
	assert.True(t, second)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var warn map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &warn))
	assert.Equal(t, "event handler failed", warn["message"])
	assert.Equal(t, "boom", warn["error"])
}

func TestNilHandlerSubscriptionIsInert(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)
	sub, err := publisher.Subscribe(ports.EventDialogPresented, nil)
	require.NoError(t, err)
	sub.Unsubscribe()
	assert.Zero(t, publisher.Subscribers(ports.EventDialogPresented))
}
