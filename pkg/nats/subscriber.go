package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"knowex-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler processes one event; a returned error redelivers it.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber consumes domain events with a durable consumer.
type Subscriber struct {
	nc       *nats.Conn
	js       jetstream.JetStream
	consumes []jetstream.ConsumeContext
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	return &Subscriber{nc: nc, js: js}, nil
}

// Subscribe starts delivering events of the given type filter (for example
// "knowex.>") to handler until Close.
func (s *Subscriber) Subscribe(ctx context.Context, filter, durable string, handler EventHandler) error {
	if err := ensureStream(ctx, s.js); err != nil {
		return err
	}

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durable,
		FilterSubject: filter,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		var payload map[string]interface{}
		if err := json.Unmarshal(msg.Data(), &payload); err != nil {
			log.Printf("Error unmarshalling event data: %v", err)
			_ = msg.Term()
			return
		}

		eventType := msg.Headers().Get(HeaderEventType)
		if eventType == "" {
			eventType = EventTypeFromSubject(msg.Subject())
		}

		occurredAt := time.Now()
		if meta, err := msg.Metadata(); err == nil {
			occurredAt = meta.Timestamp
		}

		event := events.BaseEvent{Type: eventType, Data: payload, OccurredAt: occurredAt}
		if err := handler(context.Background(), event); err != nil {
			log.Printf("Handler failed for event %s: %v", msg.Subject(), err)
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	s.consumes = append(s.consumes, cc)
	return nil
}

func (s *Subscriber) Close() {
	for _, cc := range s.consumes {
		cc.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
