package dto

import "time"

// GoToStepRequest targets a step number; locked or unknown steps are
// reported as unchanged rather than rejected.
type GoToStepRequest struct {
	Step *int `json:"step" validate:"required"`
}

type SetTabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

type SetSourceRequest struct {
	Source string `json:"source" validate:"required"`
}

// SelectDatasetRequest picks a wizard sample; an empty id clears the
// selection.
type SelectDatasetRequest struct {
	DatasetId string `json:"dataset_id"`
}

type StepResponse struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Unlocked  bool   `json:"unlocked"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

type DatasetSelectionResponse struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	FileName string `json:"file_name,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`
}

type ColumnResponse struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	DataType string `json:"data_type"`
}

type ColumnsResponse struct {
	Loading bool             `json:"loading"`
	Columns []ColumnResponse `json:"columns"`
	Valid   bool             `json:"valid"`
}

type TabNavigationResponse struct {
	Active          string `json:"active"`
	Index           int    `json:"index"`
	IsFirst         bool   `json:"is_first"`
	IsLast          bool   `json:"is_last"`
	NextLabel       string `json:"next_label"`
	CompleteEnabled bool   `json:"complete_enabled"`
}

type BuildResultResponse struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type BuildStateResponse struct {
	Building bool                 `json:"building"`
	Complete bool                 `json:"complete"`
	Enabled  bool                 `json:"enabled"`
	Label    string               `json:"label"`
	Result   *BuildResultResponse `json:"result,omitempty"`
}

type WizardStateResponse struct {
	CurrentStep int                       `json:"current_step"`
	Steps       []StepResponse            `json:"steps"`
	Tabs        TabNavigationResponse     `json:"tabs"`
	Source      string                    `json:"source"`
	Dataset     *DatasetSelectionResponse `json:"dataset"`
	Columns     ColumnsResponse           `json:"columns"`
	ConfigValid bool                      `json:"config_valid"`
	Build       BuildStateResponse        `json:"build"`
}

// WizardActionResponse reports whether a navigation request changed
// anything; locked steps and tab bounds are no-ops, not errors.
type WizardActionResponse struct {
	Changed bool                 `json:"changed"`
	State   *WizardStateResponse `json:"state"`
}

type UploadResponse struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	State       *WizardStateResponse `json:"state"`
}

type VisualizationResponse struct {
	View    string `json:"view"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Url     string `json:"url,omitempty"`
}

type VisualizationsResponse struct {
	KnowledgeStoreId string                  `json:"knowledge_store_id,omitempty"`
	Refreshing       bool                    `json:"refreshing"`
	Views            []VisualizationResponse `json:"views"`
}
