package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/tealert/internal/ports"
)

// LoggingPublisher writes every dialog event as a debug log entry and then
// delivers it to the handlers subscribed to its type, followed by the
// handlers subscribed to ports.EventAll.
type LoggingPublisher struct {
	logger ports.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates a publisher logging through logger. A nil
// logger only disables the log entries; subscribers still receive events.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs event and dispatches it synchronously.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := make([]subscriptionEntry, 0, len(p.subs[event.EventType()])+len(p.subs[ports.EventAll]))
	handlers = append(handlers, p.subs[event.EventType()]...)
	if event.EventType() != ports.EventAll {
		handlers = append(handlers, p.subs[ports.EventAll]...)
	}
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Debug(ctx, "dialog event", payloadFields(event)...)
	}

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}
	return nil
}

func payloadFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}

// Subscribe registers handler for eventType, or for every event when
// eventType is ports.EventAll.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{cancel: func() { p.unsubscribe(eventType, id) }}, nil
}

func (p *LoggingPublisher) unsubscribe(eventType string, id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	handlers := p.subs[eventType]
	for i, entry := range handlers {
		if entry.id == id {
			p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
	if len(p.subs[eventType]) == 0 {
		delete(p.subs, eventType)
	}
}

// Subscribers returns the number of handlers registered for eventType.
func (p *LoggingPublisher) Subscribers(eventType string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subs[eventType])
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}

var _ ports.EventPublisher = (*LoggingPublisher)(nil)
