package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"knowex-be/internal/pkg/logger"
	"knowex-be/pkg/events"
	pktNats "knowex-be/pkg/nats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	err       error
	published []events.Event
}

func (p *fakePublisher) Publish(_ context.Context, e events.Event) error {
	p.published = append(p.published, e)
	return p.err
}

type fakeSubscriber struct {
	filter  string
	durable string
	handler pktNats.EventHandler
	err     error
}

func (s *fakeSubscriber) Subscribe(_ context.Context, filter, durable string, handler pktNats.EventHandler) error {
	s.filter, s.durable, s.handler = filter, durable, handler
	return s.err
}

func builtEvent() events.BaseEvent {
	return events.New(events.TypeKnowledgeStoreBuilt, "s-1", map[string]interface{}{
		"knowledge_store_id": "ks-1",
	}, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
}

func TestPublishDeliversInProcessWithoutStream(t *testing.T) {
	delivery := &recordingDelivery{}
	svc := NewNotificationService(nil, nil, delivery, logger.NewNopLogger())
	require.NoError(t, svc.Start(context.Background()))

	svc.Publish(context.Background(), builtEvent())

	require.Len(t, delivery.sent, 1)
	got := delivery.sent[0]
	assert.Equal(t, "s-1", got.sessionID)
	assert.Equal(t, events.TypeKnowledgeStoreBuilt, got.notification.Type)
	assert.Equal(t, "Knowledge Store Built", got.notification.Title)
	assert.Equal(t, "Your text knowledge store has been successfully created", got.notification.Message)
	assert.Equal(t, "ks-1", got.notification.Data["knowledge_store_id"])
	assert.NotEmpty(t, got.notification.Id)
}

func TestPublishRoundTripsThroughStream(t *testing.T) {
	delivery := &recordingDelivery{}
	pub := &fakePublisher{}
	sub := &fakeSubscriber{}
	svc := NewNotificationService(pub, sub, delivery, logger.NewNopLogger())
	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, "knowex.>", sub.filter)
	assert.Equal(t, "knowex-notifications", sub.durable)

	svc.Publish(context.Background(), builtEvent())
	assert.Len(t, pub.published, 1)
	assert.Empty(t, delivery.sent, "stream delivery happens in the subscriber")

	require.NoError(t, sub.handler(context.Background(), pub.published[0]))
	assert.Len(t, delivery.sent, 1)
}

func TestPublishFallsBackWhenStreamFails(t *testing.T) {
	delivery := &recordingDelivery{}
	pub := &fakePublisher{err: errors.New("nats: no responders")}
	svc := NewNotificationService(pub, &fakeSubscriber{}, delivery, logger.NewNopLogger())
	require.NoError(t, svc.Start(context.Background()))

	svc.Publish(context.Background(), builtEvent())

	assert.Len(t, delivery.sent, 1)
}

func TestPublishDeliversWhenSubscriberFailedToStart(t *testing.T) {
	delivery := &recordingDelivery{}
	pub := &fakePublisher{}
	svc := NewNotificationService(pub, &fakeSubscriber{err: errors.New("no stream")}, delivery, logger.NewNopLogger())
	assert.Error(t, svc.Start(context.Background()))

	svc.Publish(context.Background(), builtEvent())

	assert.Len(t, pub.published, 1)
	assert.Len(t, delivery.sent, 1)
}

func TestEventsWithoutSessionOrTemplateAreDropped(t *testing.T) {
	delivery := &recordingDelivery{}
	svc := NewNotificationService(nil, nil, delivery, logger.NewNopLogger())

	svc.Publish(context.Background(), events.BaseEvent{Type: events.TypeKnowledgeStoreBuilt, Data: map[string]interface{}{}})
	svc.Publish(context.Background(), events.New("session.heartbeat", "s-1", nil, time.Now()))

	assert.Empty(t, delivery.sent)
}
