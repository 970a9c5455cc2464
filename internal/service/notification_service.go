package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"knowex-be/internal/constant"
	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/logger"
	"knowex-be/pkg/events"
	pktNats "knowex-be/pkg/nats"

	"github.com/google/uuid"
)

const notificationConsumer = "knowex-notifications"

// NotificationDelivery defines how to push real-time updates.
// Implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(sessionID string, notification dto.Notification)
	Broadcast(notification dto.Notification)
}

// EventPublisher is satisfied by *pktNats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// EventSubscriber is satisfied by *pktNats.Subscriber.
type EventSubscriber interface {
	Subscribe(ctx context.Context, filter, durable string, handler pktNats.EventHandler) error
}

type INotificationService interface {
	Start(ctx context.Context) error
	Publish(ctx context.Context, event events.Event)
}

// NotificationService turns domain events into session notifications. With
// NATS configured events make a round trip through the stream so other
// consumers see them too; otherwise they are delivered directly.
type NotificationService struct {
	publisher  EventPublisher
	subscriber EventSubscriber
	delivery   NotificationDelivery
	logger     logger.ILogger

	// set once the stream subscription is running
	streaming atomic.Bool
}

// NewNotificationService accepts nil publisher and subscriber.
func NewNotificationService(pub EventPublisher, sub EventSubscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		publisher:  pub,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event stream. Without a subscriber it
// returns immediately and Publish delivers in-process.
func (s *NotificationService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		s.logger.Info("NotificationService", "No event stream configured, delivering notifications in-process", nil)
		return nil
	}

	filter := pktNats.Subject(">")
	if err := s.subscriber.Subscribe(ctx, filter, notificationConsumer, s.handleEvent); err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.streaming.Store(true)
	s.logger.Info("NotificationService", "Notification service started, listening to "+filter, nil)
	return nil
}

// Publish emits event. Stream failures fall back to direct delivery so the
// session still hears about it.
func (s *NotificationService) Publish(ctx context.Context, event events.Event) {
	if s.publisher != nil {
		err := s.publisher.Publish(ctx, event)
		if err == nil && s.streaming.Load() {
			return
		}
		if err != nil {
			s.logger.Warn("NotificationService", "Failed to publish event", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}

	_ = s.handleEvent(ctx, event)
}

func (s *NotificationService) handleEvent(_ context.Context, event events.Event) error {
	render, ok := notificationTemplates[event.EventType()]
	if !ok {
		s.logger.Debug("NotificationService", fmt.Sprintf("No notification for event type '%s'", event.EventType()), nil)
		return nil
	}

	payload := event.Payload()
	sessionID := events.SessionID(event)
	if sessionID == "" {
		s.logger.Warn("NotificationService", fmt.Sprintf("Event %s has no session_id", event.EventType()), nil)
		return nil
	}

	title, message := render(payload)
	notif := dto.Notification{
		Id:        uuid.NewString(),
		Type:      event.EventType(),
		Title:     title,
		Message:   message,
		Data:      payload,
		CreatedAt: event.Timestamp(),
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	if s.delivery != nil {
		s.delivery.Send(sessionID, notif)
	}
	return nil
}

type notificationRenderer func(payload map[string]interface{}) (title, message string)

var notificationTemplates = map[string]notificationRenderer{
	events.TypeDatasetSelected: func(p map[string]interface{}) (string, string) {
		return "Dataset selected", fmt.Sprintf("%v is ready for column selection", p["dataset_name"])
	},
	events.TypeColumnsParsed: func(p map[string]interface{}) (string, string) {
		return "Columns detected", fmt.Sprintf("Found %v columns in %v", p["column_count"], p["dataset_name"])
	},
	events.TypeEnhancementApplied: func(p map[string]interface{}) (string, string) {
		return constant.ToastEnhancementAppliedTitle, fmt.Sprintf(constant.ToastEnhancementAppliedDescription, p["technique_title"])
	},
	events.TypeKnowledgeStoreBuilding: func(map[string]interface{}) (string, string) {
		return "Building knowledge store", "We're processing your data and generating visualizations"
	},
	events.TypeKnowledgeStoreBuilt: func(map[string]interface{}) (string, string) {
		return constant.ToastKnowledgeStoreBuiltTitle, constant.ToastKnowledgeStoreBuiltDescription
	},
	events.TypeVisualizationRefreshed: func(p map[string]interface{}) (string, string) {
		return "Visualizations refreshed", fmt.Sprintf("Knowledge store %v is ready", p["knowledge_store_id"])
	},
}
