package dialog

import (
	"github.com/alexisbeaulieu97/tealert/internal/ports"
)

// Event is a dialog lifecycle event published through ports.EventPublisher.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// EventType implements ports.DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements ports.DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }

var _ ports.DomainEvent = Event{}

func (c *Controller) publish(eventType string, fields map[string]interface{}) {
	if c.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"style": c.style.String(),
		"state": c.state.String(),
	}
	if c.title != "" {
		payload["title"] = c.title
	}
	for k, v := range fields {
		payload[k] = v
	}
	if err := c.publisher.Publish(c.ctx, Event{Type: eventType, Fields: payload}); err != nil {
		c.logger.Warn(c.ctx, "publish event failed", "event_type", eventType, "error", err)
	}
}
