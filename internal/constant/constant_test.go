package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoads(t *testing.T) {
	assert.Len(t, Channels(), 4)
	assert.Len(t, CatalogDatasets(), 12)
	assert.Len(t, KnowledgeBases(), 4)
	assert.Len(t, SeedChatMessages(), 4)

	channels := map[string]bool{}
	for _, c := range Channels() {
		channels[c.Id] = true
	}
	for _, d := range CatalogDatasets() {
		assert.True(t, channels[d.ChannelId], "dataset %s has unknown channel %s", d.Id, d.ChannelId)
		assert.NotEmpty(t, d.Columns, d.Id)
	}

	assert.NotEmpty(t, DatasetRecords("incidents"))
	assert.Nil(t, DatasetRecords("forum_discussions"))
	assert.Len(t, TextSamples("incidents", "description"), 5)
	assert.Nil(t, TextSamples("incidents", "priority"))
}

func TestSeedChatMessagesAreCopies(t *testing.T) {
	first := SeedChatMessages()
	first[1].SourceDocuments[0].Title = "changed"
	first[0].Content = "changed"

	second := SeedChatMessages()
	assert.Equal(t, "Incident #4532: Outlook Connection Error", second[1].SourceDocuments[0].Title)
	assert.NotEqual(t, "changed", second[0].Content)
}

func TestSampleDatasets(t *testing.T) {
	samples := SampleDatasets()
	require.Len(t, samples, 5)

	incidents, ok := SampleDataset("incident_tickets")
	require.True(t, ok)
	assert.Equal(t, "IT Incident Tickets", incidents.Name)
	require.Len(t, incidents.Columns, 11)

	selected := 0
	for _, c := range incidents.Columns {
		if c.Selected {
			selected++
		}
	}
	assert.Equal(t, 8, selected)

	incidents.Columns[0].Selected = false
	again, _ := SampleDataset("incident_tickets")
	assert.True(t, again.Columns[0].Selected)

	_, ok = SampleDataset("nope")
	assert.False(t, ok)
}
