// Package events holds the domain events a session emits while the wizard
// runs. Events reach the notification service directly or, when a stream is
// configured, over NATS as the JSON encoding of their payload.
package events

import "time"

const (
	KeySessionID  = "session_id"
	KeyOccurredAt = "occurred_at"
)

type Event interface {
	// EventType is also the subject suffix, e.g. "dataset.selected".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the Event every producer emits; build one with New.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string              { return e.Type }
func (e BaseEvent) Payload() map[string]interface{} { return e.Data }
func (e BaseEvent) Timestamp() time.Time            { return e.OccurredAt }

// SessionID returns the session e belongs to, or "" when the payload
// carries none.
func SessionID(e Event) string {
	id, _ := e.Payload()[KeySessionID].(string)
	return id
}
