package dto

type ChannelResponse struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DatasetCount int    `json:"dataset_count"`
}

type CatalogColumnResponse struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Selected bool   `json:"selected"`
}

type CatalogDatasetResponse struct {
	Id          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	RecordCount int                     `json:"record_count"`
	ChannelId   string                  `json:"channel_id"`
	Source      string                  `json:"source"`
	LastUpdated string                  `json:"last_updated"`
	Format      string                  `json:"format"`
	Columns     []CatalogColumnResponse `json:"columns"`
}

type TextSamplesResponse struct {
	DatasetId string   `json:"dataset_id"`
	Column    string   `json:"column"`
	Samples   []string `json:"samples"`
}

type SampleDatasetResponse struct {
	Id          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Columns     []ColumnResponse `json:"columns"`
}

type KnowledgeBaseResponse struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SourceDataset string `json:"source_dataset"`
	CreatedAt     string `json:"created_at"`
	DocumentCount int    `json:"document_count"`
	Status        string `json:"status"`
	LastQueried   string `json:"last_queried"`
	ChatPath      string `json:"chat_path"`
}
