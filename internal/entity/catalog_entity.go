package entity

type Channel struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type DatasetColumn struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Selected bool   `json:"selected"`
}

type Dataset struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	RecordCount int             `json:"record_count"`
	ChannelId   string          `json:"channel_id"`
	Source      string          `json:"source"`
	LastUpdated string          `json:"last_updated"`
	Format      string          `json:"format"`
	Columns     []DatasetColumn `json:"columns"`
}

// DatasetRecord is one preview row; keys are column names.
type DatasetRecord map[string]any

type KnowledgeBase struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SourceDataset string `json:"source_dataset"`
	CreatedAt     string `json:"created_at"`
	DocumentCount int    `json:"document_count"`
	Status        string `json:"status"`
	LastQueried   string `json:"last_queried"`
}
