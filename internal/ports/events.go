package ports

import "context"

const (
	// EventDialogPresented is emitted once a dialog has been handed to its host.
	EventDialogPresented = "dialog.presented"
	// EventDialogDismissing is emitted when removal of a dialog starts.
	EventDialogDismissing = "dialog.dismissing"
	// EventDialogDismissed is emitted when the host reports removal complete,
	// before any button callback runs.
	EventDialogDismissed = "dialog.dismissed"
	// EventButtonTapped is emitted when a tap on a button is accepted.
	EventButtonTapped = "button.tapped"
	// EventBackgroundTap is emitted for every tap outside the content cards.
	EventBackgroundTap = "dialog.background_tap"
	// EventKeyboardAvoidance is emitted when the keyboard shift changes.
	EventKeyboardAvoidance = "dialog.keyboard_avoidance"

	// EventAll subscribes a handler to every event type.
	EventAll = "*"
)

// DomainEvent is a significant occurrence in a dialog's life. Payloads are
// structured so subscribers can log them or drive UI updates.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to subscribers. Publish is synchronous
// and returns once every handler has run. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes one event. Failures are returned, not panicked, so
// the publisher can keep delivering to the remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription is a registered handler.
type Subscription interface {
	Unsubscribe()
}
