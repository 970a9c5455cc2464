package constant

import "knowex-be/pkg/store"

const (
	ChatMessageRoleUser      = store.RoleUser
	ChatMessageRoleAssistant = store.RoleAssistant

	// ChatReplyTemplate takes the user message and the knowledge base name.
	ChatReplyTemplate = "This is a simulated response to: \"%s\"\n\nBased on the %s, I've analyzed your query and found relevant information. The analysis shows several key insights related to your question.\n\nDoes this help answer your question?"

	// ChatSourceDocumentIDRange bounds the n in the doc-<n> ids cited by a reply.
	ChatSourceDocumentIDRange = 1000
)

// ChatReplySources are the documents every simulated reply cites, in order.
var ChatReplySources = []struct {
	Title     string
	Relevance float64
}{
	{"Related Technical Documentation", 0.92},
	{"Recent Support Tickets", 0.85},
	{"Training Materials", 0.78},
}
