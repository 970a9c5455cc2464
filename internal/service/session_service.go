package service

import (
	"context"
	"time"

	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/repository/memory"
	"knowex-be/pkg/store"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.SessionResponse, error)
	Show(ctx context.Context, session *store.Session) (*dto.SessionResponse, error)
	Delete(ctx context.Context, session *store.Session) error
}

type sessionService struct {
	repo   *memory.SessionRepository
	logger logger.ILogger
}

func NewSessionService(repo *memory.SessionRepository, log logger.ILogger) ISessionService {
	return &sessionService{repo: repo, logger: log}
}

func (c *sessionService) Create(ctx context.Context) (*dto.SessionResponse, error) {
	session := store.NewSession(uuid.NewString(), time.Now())
	c.repo.Save(session)

	c.logger.Info("SessionService", "Session created", map[string]interface{}{"session_id": session.ID})
	return toSessionResponse(session), nil
}

func (c *sessionService) Show(ctx context.Context, session *store.Session) (*dto.SessionResponse, error) {
	return toSessionResponse(session), nil
}

// Delete drops the session; its WebSocket clients are closed by the
// repository eviction hook.
func (c *sessionService) Delete(ctx context.Context, session *store.Session) error {
	c.repo.Delete(session.ID)
	c.logger.Info("SessionService", "Session deleted", map[string]interface{}{"session_id": session.ID})
	return nil
}

func toSessionResponse(session *store.Session) *dto.SessionResponse {
	return &dto.SessionResponse{Id: session.ID, CreatedAt: session.CreatedAt}
}
