package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStampsSession(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := map[string]interface{}{"dataset_id": "incident_tickets"}

	e := New(TypeDatasetSelected, "s-1", data, at)

	assert.Equal(t, "dataset.selected", e.EventType())
	assert.Equal(t, at, e.Timestamp())
	assert.Equal(t, "s-1", e.Payload()["session_id"])
	assert.Equal(t, "incident_tickets", e.Payload()["dataset_id"])
	assert.Equal(t, "2024-05-01T12:00:00Z", e.Payload()["occurred_at"])
	assert.NotContains(t, data, "session_id")
}

func TestSessionID(t *testing.T) {
	assert.Equal(t, "s-2", SessionID(New(TypeKnowledgeStoreBuilt, "s-2", nil, time.Now())))
	assert.Empty(t, SessionID(BaseEvent{Type: TypeColumnsParsed, Data: map[string]interface{}{}}))
}
