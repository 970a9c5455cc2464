package store

import (
	"sync"
	"time"

	"knowex-be/pkg/enhancement"
	"knowex-be/pkg/wizard"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type SourceDocument struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Relevance float64 `json:"relevance"`
}

type ChatMessage struct {
	ID              int              `json:"id"`
	Role            string           `json:"role"`
	Content         string           `json:"content"`
	Timestamp       time.Time        `json:"timestamp"`
	SourceDocuments []SourceDocument `json:"source_documents,omitempty"`
}

// Session is the in-memory state of one browser session. Every read or write
// of Wizard, Enhancement or Conversations happens between Lock and Unlock.
type Session struct {
	mu sync.Mutex

	ID        string
	CreatedAt time.Time

	Wizard      *wizard.Machine
	Enhancement *enhancement.Store

	// Conversations is keyed by knowledge base id. A missing key means the
	// conversation was never opened; an empty slice means it was cleared.
	Conversations map[string][]ChatMessage
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:            id,
		CreatedAt:     now,
		Wizard:        wizard.New(),
		Enhancement:   enhancement.NewStore(),
		Conversations: make(map[string][]ChatMessage),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }
