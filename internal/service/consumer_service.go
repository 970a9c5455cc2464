package service

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"sync"
	"time"

	"knowex-be/internal/config"
	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/repository/memory"
	"knowex-be/internal/tracer"
	"knowex-be/pkg/dataset"
	"knowex-be/pkg/enhancement"
	"knowex-be/pkg/events"
	"knowex-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	// Wait blocks until every accepted job has finished or given up.
	Wait()
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	sessions   *memory.SessionRepository
	notifier   INotificationService
	delays     config.SimulationConfig
	logger     logger.ILogger
	rand       dataset.Rand
	now        func() time.Time

	jobs sync.WaitGroup
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	sessions *memory.SessionRepository,
	notifier INotificationService,
	delays config.SimulationConfig,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		sessions:   sessions,
		notifier:   notifier,
		delays:     delays,
		logger:     log,
		rand:       globalRand{},
		now:        time.Now,
	}
}

// globalRand draws from the goroutine-safe top level source.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) Wait() {
	cs.jobs.Wait()
}

// processMessage acks right away; the simulated delay runs on its own
// goroutine so one slow job never holds up the queue. The job is counted
// before the ack so a publisher blocked on the ack can rely on Wait.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	cs.jobs.Add(1)
	msg.Ack()

	var job dto.JobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		cs.jobs.Done()
		cs.logger.Error("ConsumerService", "Failed to unmarshal job", map[string]interface{}{"error": err.Error()})
		return
	}

	go func() {
		defer cs.jobs.Done()
		cs.run(ctx, job)
	}()
}

func (cs *consumerService) delayFor(job dto.JobMessage) time.Duration {
	switch job.Kind {
	case dto.JobParseUpload:
		return cs.delays.ParseDelay
	case dto.JobApplyEnhancement:
		if job.Technique == string(enhancement.TopicClustering) {
			return cs.delays.ClusteringDelay
		}
		return cs.delays.EnhancementDelay
	case dto.JobBuildKnowledgeStore:
		return cs.delays.BuildDelay
	case dto.JobRefreshVisualization:
		return cs.delays.VisualizationDelay
	}
	return 0
}

func (cs *consumerService) run(ctx context.Context, job dto.JobMessage) {
	timer := time.NewTimer(cs.delayFor(job))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	ctx, span := tracer.Tracer().Start(ctx, "job."+job.Kind)
	defer span.End()
	span.SetAttributes(attribute.String("session.id", job.SessionId))

	session, ok := cs.sessions.Get(job.SessionId)
	if !ok {
		cs.logger.Info("ConsumerService", "Session gone, dropping job", map[string]interface{}{
			"kind":       job.Kind,
			"session_id": job.SessionId,
		})
		return
	}

	session.Lock()
	event, ok := cs.complete(session, job)
	session.Unlock()

	if !ok {
		cs.logger.Info("ConsumerService", "Job superseded", map[string]interface{}{
			"kind":       job.Kind,
			"session_id": job.SessionId,
		})
		return
	}
	span.SetAttributes(attribute.String("event.type", event.EventType()))
	cs.notifier.Publish(ctx, event)
}

// complete applies the job result. It must run under the session lock and
// reports false when the state the job was started for is gone.
func (cs *consumerService) complete(session *store.Session, job dto.JobMessage) (events.BaseEvent, bool) {
	now := cs.now()
	m := session.Wizard

	switch job.Kind {
	case dto.JobParseUpload:
		cols := dataset.MockParseColumns(cs.rand)
		if !m.ApplyParsedColumns(job.DatasetId, cols) {
			return events.BaseEvent{}, false
		}
		return events.New(events.TypeColumnsParsed, session.ID, map[string]interface{}{
			"dataset_id":   job.DatasetId,
			"dataset_name": m.Dataset().Name,
			"column_count": len(cols),
		}, now), true

	case dto.JobApplyEnhancement:
		t, err := enhancement.ParseTechnique(job.Technique)
		if err != nil {
			cs.logger.Error("ConsumerService", "Invalid technique in job", map[string]interface{}{"error": err.Error()})
			return events.BaseEvent{}, false
		}
		res := enhancement.StubResult(t, session.Enhancement.Config(t), now)
		session.Enhancement.FinishApply(t, res)
		return events.New(events.TypeEnhancementApplied, session.ID, map[string]interface{}{
			"technique":        string(t),
			"technique_title":  t.Title(),
			"preview_store_id": res.PreviewStoreID,
		}, now), true

	case dto.JobBuildKnowledgeStore:
		if !m.CompleteBuild(job.Generation, now) {
			return events.BaseEvent{}, false
		}
		return events.New(events.TypeKnowledgeStoreBuilt, session.ID, map[string]interface{}{
			"knowledge_store_id": m.Result().ID,
		}, now), true

	case dto.JobRefreshVisualization:
		r, ok := m.FinishRefresh(job.Generation, now)
		if !ok {
			return events.BaseEvent{}, false
		}
		return events.New(events.TypeVisualizationRefreshed, session.ID, map[string]interface{}{
			"knowledge_store_id": r.ID,
		}, now), true
	}

	cs.logger.Warn("ConsumerService", "Unknown job kind", map[string]interface{}{"kind": job.Kind})
	return events.BaseEvent{}, false
}
