package mapper

import (
	"knowex-be/internal/dto"
	"knowex-be/internal/entity"
	"knowex-be/pkg/navigation"
)

type CatalogMapper struct {
	wizard *WizardMapper
}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{wizard: NewWizardMapper()}
}

func (m *CatalogMapper) ToChannelResponse(c entity.Channel, datasetCount int) dto.ChannelResponse {
	return dto.ChannelResponse{
		Id:           c.Id,
		Name:         c.Name,
		Description:  c.Description,
		Icon:         c.Icon,
		DatasetCount: datasetCount,
	}
}

func (m *CatalogMapper) ToDatasetResponse(d entity.Dataset) dto.CatalogDatasetResponse {
	cols := make([]dto.CatalogColumnResponse, len(d.Columns))
	for i, c := range d.Columns {
		cols[i] = dto.CatalogColumnResponse{Name: c.Name, DataType: c.DataType, Selected: c.Selected}
	}
	return dto.CatalogDatasetResponse{
		Id:          d.Id,
		Name:        d.Name,
		Description: d.Description,
		RecordCount: d.RecordCount,
		ChannelId:   d.ChannelId,
		Source:      d.Source,
		LastUpdated: d.LastUpdated,
		Format:      d.Format,
		Columns:     cols,
	}
}

func (m *CatalogMapper) ToDatasetResponses(ds []entity.Dataset) []dto.CatalogDatasetResponse {
	out := make([]dto.CatalogDatasetResponse, len(ds))
	for i, d := range ds {
		out[i] = m.ToDatasetResponse(d)
	}
	return out
}

func (m *CatalogMapper) ToSampleDatasetResponses(ds []entity.SampleDataset) []dto.SampleDatasetResponse {
	out := make([]dto.SampleDatasetResponse, len(ds))
	for i, d := range ds {
		out[i] = dto.SampleDatasetResponse{
			Id:          d.Id,
			Name:        d.Name,
			Description: d.Description,
			Columns:     m.wizard.ToColumnResponses(d.Columns),
		}
	}
	return out
}

func (m *CatalogMapper) ToKnowledgeBaseResponse(kb entity.KnowledgeBase) dto.KnowledgeBaseResponse {
	return dto.KnowledgeBaseResponse{
		Id:            kb.Id,
		Name:          kb.Name,
		Description:   kb.Description,
		SourceDataset: kb.SourceDataset,
		CreatedAt:     kb.CreatedAt,
		DocumentCount: kb.DocumentCount,
		Status:        kb.Status,
		LastQueried:   kb.LastQueried,
		ChatPath:      navigation.ChatPath(kb.Id),
	}
}

func (m *CatalogMapper) ToKnowledgeBaseResponses(kbs []entity.KnowledgeBase) []dto.KnowledgeBaseResponse {
	out := make([]dto.KnowledgeBaseResponse, len(kbs))
	for i, kb := range kbs {
		out[i] = m.ToKnowledgeBaseResponse(kb)
	}
	return out
}
