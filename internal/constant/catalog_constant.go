package constant

import (
	_ "embed"
	"encoding/json"

	"knowex-be/internal/entity"
	"knowex-be/pkg/store"
)

//go:embed data/catalog.json
var catalogJSON []byte

type catalogDocument struct {
	Channels       []entity.Channel                  `json:"channels"`
	Datasets       []entity.Dataset                  `json:"datasets"`
	KnowledgeBases []entity.KnowledgeBase            `json:"knowledge_bases"`
	ChatMessages   []store.ChatMessage               `json:"chat_messages"`
	Records        map[string][]entity.DatasetRecord `json:"records"`
	TextSamples    map[string]map[string][]string    `json:"text_samples"`
}

var catalog = mustLoadCatalog()

func mustLoadCatalog() catalogDocument {
	var doc catalogDocument
	if err := json.Unmarshal(catalogJSON, &doc); err != nil {
		panic("constant: invalid embedded catalog: " + err.Error())
	}
	return doc
}

// Channels, datasets and knowledge bases are shared; callers must not
// modify the returned slices.

func Channels() []entity.Channel             { return catalog.Channels }
func CatalogDatasets() []entity.Dataset      { return catalog.Datasets }
func KnowledgeBases() []entity.KnowledgeBase { return catalog.KnowledgeBases }

// DatasetRecords returns the preview rows of a catalog dataset, nil when it
// has none.
func DatasetRecords(datasetID string) []entity.DatasetRecord {
	return catalog.Records[datasetID]
}

// TextSamples returns sample values of a text column, nil when none exist.
func TextSamples(datasetID, column string) []string {
	return catalog.TextSamples[datasetID][column]
}

// SeedChatMessages returns a fresh copy of the canned conversation every
// chat starts with.
func SeedChatMessages() []store.ChatMessage {
	out := make([]store.ChatMessage, len(catalog.ChatMessages))
	for i, m := range catalog.ChatMessages {
		m.SourceDocuments = append([]store.SourceDocument(nil), m.SourceDocuments...)
		out[i] = m
	}
	return out
}
