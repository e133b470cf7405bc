package ports

import "context"

const (
	// EventConfigChanged is emitted after every committed configuration mutation.
	EventConfigChanged = "config.changed"
	// EventThemeSelected is emitted when the active theme changes.
	EventThemeSelected = "theme.selected"
	// EventPreviewTriggered is emitted when the preview driver fires a notification.
	EventPreviewTriggered = "preview.triggered"
	// EventPreviewCue is emitted when only the interaction cue plays.
	EventPreviewCue = "preview.cue"
	// EventExportGenerated is emitted after export artifacts are produced.
	EventExportGenerated = "export.generated"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, UI updates, or integrations.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns once every handler has run. Implementations
// must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// returned rather than panicking so publishers can keep delivering to the
// remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources.
type Subscription interface {
	Unsubscribe()
}

// Event is a plain DomainEvent implementation.
type Event struct {
	Type string
	Data map[string]interface{}
}

// NewEvent builds an Event with the given payload.
func NewEvent(eventType string, data map[string]interface{}) Event {
	return Event{Type: eventType, Data: data}
}

func (e Event) EventType() string    { return e.Type }
func (e Event) Payload() interface{} { return e.Data }
