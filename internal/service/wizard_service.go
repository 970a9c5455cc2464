package service

import (
	"context"
	"fmt"
	"time"

	"knowex-be/internal/constant"
	"knowex-be/internal/dto"
	"knowex-be/internal/mapper"
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/pkg/dataset"
	"knowex-be/pkg/events"
	"knowex-be/pkg/store"
	"knowex-be/pkg/wizard"
)

type IWizardService interface {
	State(ctx context.Context, session *store.Session) (*dto.WizardStateResponse, error)
	GoToStep(ctx context.Context, session *store.Session, req *dto.GoToStepRequest) (*dto.WizardActionResponse, error)
	SetTab(ctx context.Context, session *store.Session, req *dto.SetTabRequest) (*dto.WizardStateResponse, error)
	NextTab(ctx context.Context, session *store.Session) (*dto.WizardActionResponse, error)
	PreviousTab(ctx context.Context, session *store.Session) (*dto.WizardActionResponse, error)
	SetSource(ctx context.Context, session *store.Session, req *dto.SetSourceRequest) (*dto.WizardStateResponse, error)
	SelectDataset(ctx context.Context, session *store.Session, req *dto.SelectDatasetRequest) (*dto.WizardStateResponse, error)
	Upload(ctx context.Context, session *store.Session, file *wizard.UploadedFile) (*dto.UploadResponse, error)
	RemoveUpload(ctx context.Context, session *store.Session) (*dto.WizardStateResponse, error)
	Columns(ctx context.Context, session *store.Session) (*dto.ColumnsResponse, error)
	ToggleColumn(ctx context.Context, session *store.Session, name string) (*dto.ColumnsResponse, error)
	Build(ctx context.Context, session *store.Session) (*dto.JobAcceptedResponse, error)
	Refresh(ctx context.Context, session *store.Session) (*dto.JobAcceptedResponse, error)
	Visualizations(ctx context.Context, session *store.Session) (*dto.VisualizationsResponse, error)
}

type wizardService struct {
	publisherService    IPublisherService
	notificationService INotificationService
	mapper              *mapper.WizardMapper
	logger              logger.ILogger
	now                 func() time.Time
}

func NewWizardService(
	publisherService IPublisherService,
	notificationService INotificationService,
	log logger.ILogger,
) IWizardService {
	return &wizardService{
		publisherService:    publisherService,
		notificationService: notificationService,
		mapper:              mapper.NewWizardMapper(),
		logger:              log,
		now:                 time.Now,
	}
}

func (c *wizardService) state(session *store.Session) *dto.WizardStateResponse {
	return c.mapper.ToStateResponse(session.Wizard, session.Enhancement)
}

func (c *wizardService) State(ctx context.Context, session *store.Session) (*dto.WizardStateResponse, error) {
	session.Lock()
	defer session.Unlock()

	return c.state(session), nil
}

func (c *wizardService) GoToStep(ctx context.Context, session *store.Session, req *dto.GoToStepRequest) (*dto.WizardActionResponse, error) {
	session.Lock()
	defer session.Unlock()

	changed := session.Wizard.GoToStep(*req.Step)
	return &dto.WizardActionResponse{Changed: changed, State: c.state(session)}, nil
}

func (c *wizardService) SetTab(ctx context.Context, session *store.Session, req *dto.SetTabRequest) (*dto.WizardStateResponse, error) {
	tab, err := wizard.ParseTab(req.Tab)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if err := session.Wizard.SetTab(tab); err != nil {
		return nil, err
	}
	return c.state(session), nil
}

// NextTab advances the build page. On the visualize tab of a finished build
// the "Complete" action refreshes the knowledge store result.
func (c *wizardService) NextTab(ctx context.Context, session *store.Session) (*dto.WizardActionResponse, error) {
	session.Lock()
	m := session.Wizard
	before := m.ActiveTab()

	var refreshed *wizard.BuildResult
	var onComplete func()
	if m.Complete() {
		onComplete = func() {
			if r, err := m.RefreshResult(c.now()); err == nil {
				refreshed = &r
			}
		}
	}

	completed := m.NextTab(onComplete)
	res := &dto.WizardActionResponse{
		Changed: completed || m.ActiveTab() != before,
		State:   c.state(session),
	}
	session.Unlock()

	if refreshed != nil {
		c.notificationService.Publish(ctx, events.New(events.TypeVisualizationRefreshed, session.ID, map[string]interface{}{
			"knowledge_store_id": refreshed.ID,
		}, refreshed.CreatedAt))
	}
	return res, nil
}

func (c *wizardService) PreviousTab(ctx context.Context, session *store.Session) (*dto.WizardActionResponse, error) {
	session.Lock()
	defer session.Unlock()

	before := session.Wizard.ActiveTab()
	session.Wizard.PreviousTab()
	return &dto.WizardActionResponse{
		Changed: session.Wizard.ActiveTab() != before,
		State:   c.state(session),
	}, nil
}

func (c *wizardService) SetSource(ctx context.Context, session *store.Session, req *dto.SetSourceRequest) (*dto.WizardStateResponse, error) {
	tab, err := wizard.ParseSourceTab(req.Source)
	if err != nil {
		return nil, err
	}

	session.Lock()
	if session.Wizard.SourceTab() == tab {
		defer session.Unlock()
		return c.state(session), nil
	}
	sel, err := session.Wizard.SelectSourceTab(tab, c.now())
	if err != nil {
		session.Unlock()
		return nil, err
	}
	event := c.afterSelect(session, sel)
	res := c.state(session)
	session.Unlock()

	c.publish(ctx, event)
	return res, nil
}

func (c *wizardService) SelectDataset(ctx context.Context, session *store.Session, req *dto.SelectDatasetRequest) (*dto.WizardStateResponse, error) {
	var name string
	if req.DatasetId != "" {
		sample, ok := constant.SampleDataset(req.DatasetId)
		if !ok {
			return nil, serverutils.NotFound("Sample dataset not found")
		}
		name = sample.Name
	}

	session.Lock()
	sel := session.Wizard.SelectSample(req.DatasetId, name)
	event := c.afterSelect(session, sel)
	res := c.state(session)
	session.Unlock()

	c.publish(ctx, event)
	return res, nil
}

// Upload rejects anything but CSV and Excel files before touching state.
func (c *wizardService) Upload(ctx context.Context, session *store.Session, file *wizard.UploadedFile) (*dto.UploadResponse, error) {
	if err := dataset.ValidateFileName(file.Name); err != nil {
		return nil, err
	}

	// A failed publish must leave the previous selection in place.
	now := c.now()
	session.Lock()
	err := c.publisherService.PublishJob(ctx, dto.JobMessage{
		Kind:        dto.JobParseUpload,
		SessionId:   session.ID,
		DatasetId:   wizard.UploadID(now),
		RequestedAt: now,
	})
	if err != nil {
		session.Unlock()
		return nil, err
	}
	sel := session.Wizard.AttachUpload(file, now)
	event := c.afterSelect(session, sel)
	state := c.state(session)
	session.Unlock()

	c.publish(ctx, event)

	c.logger.Info("WizardService", "Dataset uploaded", map[string]interface{}{
		"session_id": session.ID,
		"file_name":  file.Name,
		"file_size":  file.Size,
	})
	return &dto.UploadResponse{
		Title:       constant.ToastFileUploadedTitle,
		Description: fmt.Sprintf(constant.ToastFileUploadedDescription, file.Name),
		State:       state,
	}, nil
}

func (c *wizardService) RemoveUpload(ctx context.Context, session *store.Session) (*dto.WizardStateResponse, error) {
	session.Lock()
	defer session.Unlock()

	session.Wizard.RemoveUpload()
	return c.state(session), nil
}

func (c *wizardService) Columns(ctx context.Context, session *store.Session) (*dto.ColumnsResponse, error) {
	session.Lock()
	defer session.Unlock()

	res := c.mapper.ToColumnsResponse(session.Wizard)
	return &res, nil
}

func (c *wizardService) ToggleColumn(ctx context.Context, session *store.Session, name string) (*dto.ColumnsResponse, error) {
	session.Lock()
	defer session.Unlock()

	if !session.Wizard.ToggleColumn(name) {
		return nil, serverutils.NotFound("Column not found")
	}
	res := c.mapper.ToColumnsResponse(session.Wizard)
	return &res, nil
}

func (c *wizardService) Build(ctx context.Context, session *store.Session) (*dto.JobAcceptedResponse, error) {
	session.Lock()
	m := session.Wizard
	generation, err := m.StartBuild()
	if err != nil {
		session.Unlock()
		return nil, err
	}

	datasetID := m.Dataset().ID
	err = c.publisherService.PublishJob(ctx, dto.JobMessage{
		Kind:        dto.JobBuildKnowledgeStore,
		SessionId:   session.ID,
		DatasetId:   datasetID,
		Generation:  generation,
		RequestedAt: c.now(),
	})
	if err != nil {
		m.AbortBuild(generation)
		session.Unlock()
		return nil, err
	}
	state := c.state(session)
	session.Unlock()

	c.notificationService.Publish(ctx, events.New(events.TypeKnowledgeStoreBuilding, session.ID, map[string]interface{}{
		"dataset_id": datasetID,
	}, c.now()))
	return &dto.JobAcceptedResponse{Kind: dto.JobBuildKnowledgeStore, State: state}, nil
}

func (c *wizardService) Refresh(ctx context.Context, session *store.Session) (*dto.JobAcceptedResponse, error) {
	session.Lock()
	defer session.Unlock()

	generation, err := session.Wizard.BeginRefresh()
	if err != nil {
		return nil, err
	}
	err = c.publisherService.PublishJob(ctx, dto.JobMessage{
		Kind:        dto.JobRefreshVisualization,
		SessionId:   session.ID,
		Generation:  generation,
		RequestedAt: c.now(),
	})
	if err != nil {
		session.Wizard.AbortRefresh(generation)
		return nil, err
	}
	return &dto.JobAcceptedResponse{
		Kind:  dto.JobRefreshVisualization,
		State: c.mapper.ToVisualizationsResponse(session.Wizard),
	}, nil
}

func (c *wizardService) Visualizations(ctx context.Context, session *store.Session) (*dto.VisualizationsResponse, error) {
	session.Lock()
	defer session.Unlock()

	return c.mapper.ToVisualizationsResponse(session.Wizard), nil
}

// afterSelect copies the column table of a sample selection; upload
// columns arrive with the parse job. It runs under the session lock and
// returns the event to publish once unlocked.
func (c *wizardService) afterSelect(session *store.Session, sel *wizard.DatasetSelection) *events.BaseEvent {
	if sel == nil {
		return nil
	}

	if sel.Variant == wizard.VariantSample {
		if sample, ok := constant.SampleDataset(sel.ID); ok {
			session.Wizard.SetColumns(sample.Columns)
		}
	}

	event := events.New(events.TypeDatasetSelected, session.ID, map[string]interface{}{
		"dataset_id":   sel.ID,
		"dataset_name": sel.Name,
		"dataset_type": string(sel.Variant),
	}, c.now())
	return &event
}

func (c *wizardService) publish(ctx context.Context, event *events.BaseEvent) {
	if event != nil {
		c.notificationService.Publish(ctx, *event)
	}
}
