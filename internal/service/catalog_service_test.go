package service

import (
	"context"
	"testing"

	"knowex-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelsCountDatasets(t *testing.T) {
	svc := NewCatalogService()

	res, err := svc.Channels(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 4)
	counts := map[string]int{}
	for _, ch := range res {
		counts[ch.Id] = ch.DatasetCount
	}
	assert.Equal(t, map[string]int{"itsm": 5, "customer": 2, "docs": 3, "social": 2}, counts)
}

func TestDatasetsFilter(t *testing.T) {
	svc := NewCatalogService()
	ctx := context.Background()

	tests := []struct {
		name    string
		channel string
		search  string
		want    []string
	}{
		{name: "all", want: nil},
		{name: "channel", channel: "docs", want: []string{"product_documentation", "training_materials", "api_documentation"}},
		{name: "search name", search: "FORUM", want: []string{"forum_discussions"}},
		{name: "search description", search: "root cause", want: []string{"problem_records"}},
		{name: "channel and search", channel: "itsm", search: "feedback", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Datasets(ctx, tt.channel, tt.search)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Len(t, res, 12)
				return
			}
			ids := make([]string, 0, len(res))
			for _, d := range res {
				ids = append(ids, d.Id)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDatasetLookups(t *testing.T) {
	svc := NewCatalogService()
	ctx := context.Background()

	d, err := svc.Dataset(ctx, "incidents")
	require.NoError(t, err)
	assert.Equal(t, "Incident Tickets", d.Name)

	records, err := svc.Records(ctx, "incidents")
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = svc.Records(ctx, "forum_discussions")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)

	samples, err := svc.TextSamples(ctx, "incidents", "description")
	require.NoError(t, err)
	assert.NotEmpty(t, samples.Samples)

	_, err = svc.Dataset(ctx, "payroll")
	assert.Equal(t, 404, serverutils.ToAppError(err).Status)
	_, err = svc.Records(ctx, "payroll")
	assert.Equal(t, 404, serverutils.ToAppError(err).Status)
	_, err = svc.TextSamples(ctx, "payroll", "x")
	assert.Equal(t, 404, serverutils.ToAppError(err).Status)
}

func TestKnowledgeBaseSearch(t *testing.T) {
	svc := NewCatalogService()
	ctx := context.Background()

	res, err := svc.KnowledgeBases(ctx, "incident tickets")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "kb-1", res[0].Id)

	res, _ = svc.KnowledgeBases(ctx, "MANAGEMENT")
	require.Len(t, res, 1)
	assert.Equal(t, "kb-4", res[0].Id)

	res, _ = svc.KnowledgeBases(ctx, "")
	assert.Len(t, res, 4)

	_, err = svc.KnowledgeBase(ctx, "kb-9")
	assert.Equal(t, 404, serverutils.ToAppError(err).Status)
}

func TestSampleDatasets(t *testing.T) {
	res, err := NewCatalogService().SampleDatasets(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 5)
	assert.Equal(t, "incident_tickets", res[0].Id)
	assert.Len(t, res[0].Columns, 11)
}
