package dto

import "time"

type SendChatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type SourceDocumentResponse struct {
	Id        string  `json:"id"`
	Title     string  `json:"title"`
	Relevance float64 `json:"relevance"`
}

type ChatMessageResponse struct {
	Id              int                      `json:"id"`
	Role            string                   `json:"role"`
	Content         string                   `json:"content"`
	Timestamp       time.Time                `json:"timestamp"`
	SourceDocuments []SourceDocumentResponse `json:"source_documents,omitempty"`
}

type ConversationResponse struct {
	KnowledgeBase KnowledgeBaseResponse `json:"knowledge_base"`
	Messages      []ChatMessageResponse `json:"messages"`
}

type SendChatMessageResponse struct {
	Sent  ChatMessageResponse `json:"sent"`
	Reply ChatMessageResponse `json:"reply"`
}
