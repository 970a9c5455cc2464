package mapper

import (
	"knowex-be/internal/dto"
	"knowex-be/pkg/enhancement"
	"knowex-be/pkg/wizard"
)

type EnhancementMapper struct{}

func NewEnhancementMapper() *EnhancementMapper {
	return &EnhancementMapper{}
}

func (m *EnhancementMapper) ToTechniqueResponse(t enhancement.Technique) dto.TechniqueResponse {
	return dto.TechniqueResponse{Id: string(t), Title: t.Title(), Description: t.Description()}
}

func (m *EnhancementMapper) ToTechniqueResponses(ts []enhancement.Technique) []dto.TechniqueResponse {
	out := make([]dto.TechniqueResponse, len(ts))
	for i, t := range ts {
		out[i] = m.ToTechniqueResponse(t)
	}
	return out
}

func (m *EnhancementMapper) ToConfigResponse(c enhancement.Config) dto.TechniqueConfigResponse {
	return dto.TechniqueConfigResponse{
		Temperature:     c.Temperature,
		CreativityLevel: c.CreativityLevel,
		CustomParams:    c.CustomParams,
	}
}

func (m *EnhancementMapper) ToTechniqueStateResponse(s *enhancement.Store, t enhancement.Technique) dto.TechniqueStateResponse {
	res := dto.TechniqueStateResponse{
		TechniqueResponse: m.ToTechniqueResponse(t),
		Config:            m.ToConfigResponse(s.Config(t)),
		Processing:        s.Processing(t),
	}
	if r, ok := s.Result(t); ok {
		res.Result = &dto.TechniqueResultResponse{
			Samples:        r.Samples,
			PreviewStoreId: r.PreviewStoreID,
			PreviewUrl:     wizard.VisualizationURL(wizard.VisualizationViews[0], r.PreviewStoreID),
			AppliedAt:      r.AppliedAt,
		}
	}
	return res
}

func (m *EnhancementMapper) ToStateResponse(s *enhancement.Store) *dto.EnhancementStateResponse {
	res := &dto.EnhancementStateResponse{
		Enabled:    s.Enabled(),
		Techniques: make([]dto.TechniqueStateResponse, 0, len(enhancement.Techniques)),
	}
	if t, ok := s.Active(); ok {
		id := string(t)
		res.ActiveTechnique = &id
	}
	for _, t := range enhancement.Techniques {
		res.Techniques = append(res.Techniques, m.ToTechniqueStateResponse(s, t))
	}
	return res
}

func (m *EnhancementMapper) ToPatch(req *dto.UpdateTechniqueConfigRequest) enhancement.Patch {
	return enhancement.Patch{
		Temperature:     req.Temperature,
		CreativityLevel: req.CreativityLevel,
		CustomParams:    req.CustomParams,
	}
}
