package dto

import "time"

const (
	JobParseUpload          = "parse_upload"
	JobApplyEnhancement     = "apply_enhancement"
	JobBuildKnowledgeStore  = "build_knowledge_store"
	JobRefreshVisualization = "refresh_visualization"
)

// JobMessage is the payload of a simulated background job. DatasetId and
// Generation identify the wizard state the job was started for.
type JobMessage struct {
	Kind        string    `json:"kind"`
	SessionId   string    `json:"session_id"`
	DatasetId   string    `json:"dataset_id,omitempty"`
	Generation  uint64    `json:"generation,omitempty"`
	Technique   string    `json:"technique,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

type JobAcceptedResponse struct {
	Kind  string `json:"kind"`
	State any    `json:"state"`
}
