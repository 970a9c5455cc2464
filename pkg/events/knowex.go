package events

import (
	"maps"
	"time"
)

const (
	TypeDatasetSelected        = "dataset.selected"
	TypeColumnsParsed          = "columns.parsed"
	TypeEnhancementApplied     = "enhancement.applied"
	TypeKnowledgeStoreBuilding = "knowledge_store.building"
	TypeKnowledgeStoreBuilt    = "knowledge_store.built"
	TypeVisualizationRefreshed = "visualization.refreshed"
)

// New stamps an event of type typ for a session.
func New(typ, sessionID string, data map[string]interface{}, at time.Time) BaseEvent {
	payload := make(map[string]interface{}, len(data)+1)
	maps.Copy(payload, data)
	payload[KeySessionID] = sessionID
	payload[KeyOccurredAt] = at.UTC().Format(time.RFC3339Nano)

	return BaseEvent{Type: typ, Data: payload, OccurredAt: at}
}
