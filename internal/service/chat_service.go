package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"knowex-be/internal/constant"
	"knowex-be/internal/dto"
	"knowex-be/internal/mapper"
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/pkg/store"
)

type IChatService interface {
	Conversation(ctx context.Context, session *store.Session, kbId string) (*dto.ConversationResponse, error)
	Send(ctx context.Context, session *store.Session, kbId string, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error)
	Clear(ctx context.Context, session *store.Session, kbId string) (*dto.ConversationResponse, error)
}

type chatService struct {
	replyDelay    time.Duration
	chatMapper    *mapper.ChatMapper
	catalogMapper *mapper.CatalogMapper
	logger        logger.ILogger
	now           func() time.Time
	docID         func() int
}

func NewChatService(replyDelay time.Duration, log logger.ILogger) IChatService {
	return &chatService{
		replyDelay:    replyDelay,
		chatMapper:    mapper.NewChatMapper(),
		catalogMapper: mapper.NewCatalogMapper(),
		logger:        log,
		now:           time.Now,
		docID:         func() int { return rand.IntN(constant.ChatSourceDocumentIDRange) },
	}
}

func (c *chatService) Conversation(ctx context.Context, session *store.Session, kbId string) (*dto.ConversationResponse, error) {
	kb, ok := findKnowledgeBase(kbId)
	if !ok {
		return nil, serverutils.NotFound("Knowledge base not found")
	}

	session.Lock()
	defer session.Unlock()

	return &dto.ConversationResponse{
		KnowledgeBase: c.catalogMapper.ToKnowledgeBaseResponse(kb),
		Messages:      c.chatMapper.ToMessageResponses(conversation(session, kbId)),
	}, nil
}

// Send appends the user message at once and the simulated answer after the
// reply delay. Cancelling the request abandons the answer.
func (c *chatService) Send(ctx context.Context, session *store.Session, kbId string, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error) {
	kb, ok := findKnowledgeBase(kbId)
	if !ok {
		return nil, serverutils.NotFound("Knowledge base not found")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, serverutils.BadRequest("Message cannot be empty", nil)
	}

	session.Lock()
	sent := store.ChatMessage{
		ID:        nextMessageID(conversation(session, kbId)),
		Role:      constant.ChatMessageRoleUser,
		Content:   content,
		Timestamp: c.now(),
	}
	session.Conversations[kbId] = append(session.Conversations[kbId], sent)
	session.Unlock()

	timer := time.NewTimer(c.replyDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	docs := make([]store.SourceDocument, 0, len(constant.ChatReplySources))
	for _, src := range constant.ChatReplySources {
		docs = append(docs, store.SourceDocument{
			ID:        fmt.Sprintf("doc-%d", c.docID()),
			Title:     src.Title,
			Relevance: src.Relevance,
		})
	}

	session.Lock()
	reply := store.ChatMessage{
		ID:              nextMessageID(conversation(session, kbId)),
		Role:            constant.ChatMessageRoleAssistant,
		Content:         fmt.Sprintf(constant.ChatReplyTemplate, content, kb.Name),
		Timestamp:       c.now(),
		SourceDocuments: docs,
	}
	session.Conversations[kbId] = append(session.Conversations[kbId], reply)
	session.Unlock()

	c.logger.Debug("ChatService", "Reply sent", map[string]interface{}{
		"session_id":        session.ID,
		"knowledge_base_id": kbId,
	})
	return &dto.SendChatMessageResponse{
		Sent:  c.chatMapper.ToMessageResponse(sent),
		Reply: c.chatMapper.ToMessageResponse(reply),
	}, nil
}

func (c *chatService) Clear(ctx context.Context, session *store.Session, kbId string) (*dto.ConversationResponse, error) {
	kb, ok := findKnowledgeBase(kbId)
	if !ok {
		return nil, serverutils.NotFound("Knowledge base not found")
	}

	session.Lock()
	defer session.Unlock()

	session.Conversations[kbId] = []store.ChatMessage{}
	return &dto.ConversationResponse{
		KnowledgeBase: c.catalogMapper.ToKnowledgeBaseResponse(kb),
		Messages:      []dto.ChatMessageResponse{},
	}, nil
}

// conversation returns the messages for kbId, seeding a conversation that
// was never opened. Callers hold the session lock.
func conversation(session *store.Session, kbId string) []store.ChatMessage {
	msgs, ok := session.Conversations[kbId]
	if !ok {
		msgs = constant.SeedChatMessages()
		session.Conversations[kbId] = msgs
	}
	return msgs
}

func nextMessageID(msgs []store.ChatMessage) int {
	id := 0
	for _, m := range msgs {
		id = max(id, m.ID)
	}
	return id + 1
}
