// Package nats carries domain events over a NATS JetStream stream.
package nats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	StreamName    = "KNOWEX"
	SubjectPrefix = "knowex."

	// HeaderEventType carries the event type so consumers need not parse it
	// back out of the subject.
	HeaderEventType = "Knowex-Event-Type"
)

// Subject is the stream subject an event type is published on.
func Subject(eventType string) string {
	return SubjectPrefix + eventType
}

// EventTypeFromSubject strips the stream prefix from subject.
func EventTypeFromSubject(subject string) string {
	return strings.TrimPrefix(subject, SubjectPrefix)
}

func connect(url string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.Name("knowex-be"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	return nc, js, nil
}

// ensureStream creates the event stream. Events are demo telemetry, so the
// stream lives in memory and ages out after a day.
func ensureStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{SubjectPrefix + ">"},
		Storage:   jetstream.MemoryStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    24 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", StreamName, err)
	}
	return nil
}
