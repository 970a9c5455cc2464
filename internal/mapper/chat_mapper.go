package mapper

import (
	"knowex-be/internal/dto"
	"knowex-be/pkg/store"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToMessageResponse(msg store.ChatMessage) dto.ChatMessageResponse {
	var docs []dto.SourceDocumentResponse
	for _, d := range msg.SourceDocuments {
		docs = append(docs, dto.SourceDocumentResponse{Id: d.ID, Title: d.Title, Relevance: d.Relevance})
	}
	return dto.ChatMessageResponse{
		Id:              msg.ID,
		Role:            msg.Role,
		Content:         msg.Content,
		Timestamp:       msg.Timestamp,
		SourceDocuments: docs,
	}
}

func (m *ChatMapper) ToMessageResponses(msgs []store.ChatMessage) []dto.ChatMessageResponse {
	out := make([]dto.ChatMessageResponse, len(msgs))
	for i, msg := range msgs {
		out[i] = m.ToMessageResponse(msg)
	}
	return out
}
