package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"knowex-be/internal/config"
	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/repository/memory"
	"knowex-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
)

const (
	testTopic   = "test.jobs"
	waitFor     = 2 * time.Second
	pollEvery   = 5 * time.Millisecond
	shortDelay  = 10 * time.Millisecond
	testSession = "session-1"
)

var fastDelays = config.SimulationConfig{
	ParseDelay:         shortDelay,
	EnhancementDelay:   shortDelay,
	ClusteringDelay:    shortDelay,
	BuildDelay:         shortDelay,
	ChatReplyDelay:     0,
	VisualizationDelay: shortDelay,
}

type sent struct {
	sessionID    string
	notification dto.Notification
}

// recordingDelivery stands in for the WebSocket hub.
type recordingDelivery struct {
	mu   sync.Mutex
	sent []sent
}

func (d *recordingDelivery) Send(sessionID string, n dto.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, sent{sessionID: sessionID, notification: n})
}

func (d *recordingDelivery) Broadcast(n dto.Notification) {
	d.Send("*", n)
}

func (d *recordingDelivery) types(sessionID string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, s := range d.sent {
		if s.sessionID == sessionID {
			out = append(out, s.notification.Type)
		}
	}
	return out
}

func (d *recordingDelivery) last() dto.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sent[len(d.sent)-1].notification
}

type harness struct {
	repo        *memory.SessionRepository
	delivery    *recordingDelivery
	publisher   IPublisherService
	notifier    INotificationService
	consumer    IConsumerService
	wizard      IWizardService
	enhancement IEnhancementService
	session     *store.Session
}

// newHarness wires the job pipeline over a real gochannel with millisecond
// delays. Jobs are drained before the test returns.
func newHarness(t *testing.T) *harness {
	t.Helper()

	log := logger.NewNopLogger()
	pubSub := gochannel.NewGoChannel(gochannel.Config{BlockPublishUntilSubscriberAck: true}, watermill.NopLogger{})
	repo := memory.NewSessionRepository(time.Hour, nil)
	delivery := &recordingDelivery{}
	notifier := NewNotificationService(nil, nil, delivery, log)
	consumer := NewConsumerService(pubSub, testTopic, repo, notifier, fastDelays, log)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, consumer.Consume(ctx))
	t.Cleanup(func() {
		consumer.Wait()
		cancel()
		_ = pubSub.Close()
	})

	publisher := NewPublisherService(testTopic, pubSub)
	session := store.NewSession(testSession, time.Now())
	repo.Save(session)

	return &harness{
		repo:        repo,
		delivery:    delivery,
		publisher:   publisher,
		notifier:    notifier,
		consumer:    consumer,
		wizard:      NewWizardService(publisher, notifier, log),
		enhancement: NewEnhancementService(publisher),
		session:     session,
	}
}

// waitForEvent blocks until the session has been notified of typ.
func waitForEvent(t *testing.T, h *harness, typ string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return slices.Contains(h.delivery.types(testSession), typ)
	}, waitFor, pollEvery)
}

func ptr[T any](v T) *T { return &v }
