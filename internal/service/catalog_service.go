package service

import (
	"context"
	"strings"

	"knowex-be/internal/constant"
	"knowex-be/internal/dto"
	"knowex-be/internal/entity"
	"knowex-be/internal/mapper"
	"knowex-be/internal/pkg/serverutils"
)

type ICatalogService interface {
	Channels(ctx context.Context) ([]dto.ChannelResponse, error)
	Datasets(ctx context.Context, channelId, search string) ([]dto.CatalogDatasetResponse, error)
	Dataset(ctx context.Context, id string) (*dto.CatalogDatasetResponse, error)
	Records(ctx context.Context, id string) ([]entity.DatasetRecord, error)
	TextSamples(ctx context.Context, id, column string) (*dto.TextSamplesResponse, error)
	SampleDatasets(ctx context.Context) ([]dto.SampleDatasetResponse, error)
	KnowledgeBases(ctx context.Context, search string) ([]dto.KnowledgeBaseResponse, error)
	KnowledgeBase(ctx context.Context, id string) (*dto.KnowledgeBaseResponse, error)
}

type catalogService struct {
	mapper *mapper.CatalogMapper
}

func NewCatalogService() ICatalogService {
	return &catalogService{mapper: mapper.NewCatalogMapper()}
}

func (c *catalogService) Channels(ctx context.Context) ([]dto.ChannelResponse, error) {
	counts := make(map[string]int)
	for _, d := range constant.CatalogDatasets() {
		counts[d.ChannelId]++
	}

	channels := constant.Channels()
	result := make([]dto.ChannelResponse, 0, len(channels))
	for _, ch := range channels {
		result = append(result, c.mapper.ToChannelResponse(ch, counts[ch.Id]))
	}
	return result, nil
}

// Datasets lists catalog datasets, optionally narrowed to one channel and
// to names or descriptions containing search (case-insensitive).
func (c *catalogService) Datasets(ctx context.Context, channelId, search string) ([]dto.CatalogDatasetResponse, error) {
	query := strings.ToLower(strings.TrimSpace(search))

	matched := make([]entity.Dataset, 0)
	for _, d := range constant.CatalogDatasets() {
		if channelId != "" && d.ChannelId != channelId {
			continue
		}
		if query != "" && !containsFold(query, d.Name, d.Description) {
			continue
		}
		matched = append(matched, d)
	}
	return c.mapper.ToDatasetResponses(matched), nil
}

func (c *catalogService) Dataset(ctx context.Context, id string) (*dto.CatalogDatasetResponse, error) {
	d, ok := findDataset(id)
	if !ok {
		return nil, serverutils.NotFound("Dataset not found")
	}
	res := c.mapper.ToDatasetResponse(d)
	return &res, nil
}

func (c *catalogService) Records(ctx context.Context, id string) ([]entity.DatasetRecord, error) {
	if _, ok := findDataset(id); !ok {
		return nil, serverutils.NotFound("Dataset not found")
	}
	records := constant.DatasetRecords(id)
	if records == nil {
		records = []entity.DatasetRecord{}
	}
	return records, nil
}

func (c *catalogService) TextSamples(ctx context.Context, id, column string) (*dto.TextSamplesResponse, error) {
	if _, ok := findDataset(id); !ok {
		return nil, serverutils.NotFound("Dataset not found")
	}
	samples := constant.TextSamples(id, column)
	if samples == nil {
		samples = []string{}
	}
	return &dto.TextSamplesResponse{DatasetId: id, Column: column, Samples: samples}, nil
}

func (c *catalogService) SampleDatasets(ctx context.Context) ([]dto.SampleDatasetResponse, error) {
	return c.mapper.ToSampleDatasetResponses(constant.SampleDatasets()), nil
}

// KnowledgeBases matches search against name, description and source
// dataset, ignoring case.
func (c *catalogService) KnowledgeBases(ctx context.Context, search string) ([]dto.KnowledgeBaseResponse, error) {
	query := strings.ToLower(strings.TrimSpace(search))

	matched := make([]entity.KnowledgeBase, 0)
	for _, kb := range constant.KnowledgeBases() {
		if query != "" && !containsFold(query, kb.Name, kb.Description, kb.SourceDataset) {
			continue
		}
		matched = append(matched, kb)
	}
	return c.mapper.ToKnowledgeBaseResponses(matched), nil
}

func (c *catalogService) KnowledgeBase(ctx context.Context, id string) (*dto.KnowledgeBaseResponse, error) {
	kb, ok := findKnowledgeBase(id)
	if !ok {
		return nil, serverutils.NotFound("Knowledge base not found")
	}
	res := c.mapper.ToKnowledgeBaseResponse(kb)
	return &res, nil
}

func findDataset(id string) (entity.Dataset, bool) {
	for _, d := range constant.CatalogDatasets() {
		if d.Id == id {
			return d, true
		}
	}
	return entity.Dataset{}, false
}

func findKnowledgeBase(id string) (entity.KnowledgeBase, bool) {
	for _, kb := range constant.KnowledgeBases() {
		if kb.Id == id {
			return kb, true
		}
	}
	return entity.KnowledgeBase{}, false
}

// containsFold expects query already lowercased.
func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
