package service

import (
	"context"
	"time"

	"knowex-be/internal/dto"
	"knowex-be/internal/mapper"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/pkg/enhancement"
	"knowex-be/pkg/store"
)

type IEnhancementService interface {
	State(ctx context.Context, session *store.Session) (*dto.EnhancementStateResponse, error)
	Techniques(ctx context.Context) ([]dto.TechniqueResponse, error)
	SetActive(ctx context.Context, session *store.Session, req *dto.SetActiveTechniqueRequest) (*dto.EnhancementStateResponse, error)
	SetEnabled(ctx context.Context, session *store.Session, req *dto.SetEnhancementEnabledRequest) (*dto.EnhancementStateResponse, error)
	UpdateConfig(ctx context.Context, session *store.Session, technique string, req *dto.UpdateTechniqueConfigRequest) (*dto.TechniqueStateResponse, error)
	Apply(ctx context.Context, session *store.Session, technique string) (*dto.JobAcceptedResponse, error)
}

type enhancementService struct {
	publisherService IPublisherService
	mapper           *mapper.EnhancementMapper
	now              func() time.Time
}

func NewEnhancementService(publisherService IPublisherService) IEnhancementService {
	return &enhancementService{
		publisherService: publisherService,
		mapper:           mapper.NewEnhancementMapper(),
		now:              time.Now,
	}
}

func (c *enhancementService) State(ctx context.Context, session *store.Session) (*dto.EnhancementStateResponse, error) {
	session.Lock()
	defer session.Unlock()

	return c.mapper.ToStateResponse(session.Enhancement), nil
}

func (c *enhancementService) Techniques(ctx context.Context) ([]dto.TechniqueResponse, error) {
	return c.mapper.ToTechniqueResponses(enhancement.Techniques), nil
}

func (c *enhancementService) SetActive(ctx context.Context, session *store.Session, req *dto.SetActiveTechniqueRequest) (*dto.EnhancementStateResponse, error) {
	var selected *enhancement.Technique
	if req.Technique != nil {
		t, err := enhancement.ParseTechnique(*req.Technique)
		if err != nil {
			return nil, err
		}
		selected = &t
	}

	session.Lock()
	defer session.Unlock()

	session.Enhancement.SetActive(selected)
	return c.mapper.ToStateResponse(session.Enhancement), nil
}

func (c *enhancementService) SetEnabled(ctx context.Context, session *store.Session, req *dto.SetEnhancementEnabledRequest) (*dto.EnhancementStateResponse, error) {
	session.Lock()
	defer session.Unlock()

	session.Enhancement.SetEnabled(*req.Enabled)
	return c.mapper.ToStateResponse(session.Enhancement), nil
}

func (c *enhancementService) UpdateConfig(ctx context.Context, session *store.Session, technique string, req *dto.UpdateTechniqueConfigRequest) (*dto.TechniqueStateResponse, error) {
	t, err := enhancement.ParseTechnique(technique)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	session.Enhancement.UpdateConfig(t, c.mapper.ToPatch(req))
	res := c.mapper.ToTechniqueStateResponse(session.Enhancement, t)
	return &res, nil
}

// Apply starts the simulated run of a technique on the sample data. The
// canned result lands when the job completes.
func (c *enhancementService) Apply(ctx context.Context, session *store.Session, technique string) (*dto.JobAcceptedResponse, error) {
	t, err := enhancement.ParseTechnique(technique)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if session.Enhancement.Processing(t) {
		return nil, serverutils.Conflict(t.Title()+" is already being applied", nil)
	}

	session.Enhancement.BeginApply(t)
	err = c.publisherService.PublishJob(ctx, dto.JobMessage{
		Kind:        dto.JobApplyEnhancement,
		SessionId:   session.ID,
		Technique:   string(t),
		RequestedAt: c.now(),
	})
	if err != nil {
		session.Enhancement.AbortApply(t)
		return nil, err
	}

	res := c.mapper.ToTechniqueStateResponse(session.Enhancement, t)
	return &dto.JobAcceptedResponse{Kind: dto.JobApplyEnhancement, State: res}, nil
}
