package handler

import (
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/internal/repository/memory"
	internalWS "knowex-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type NotificationHandler struct {
	repo   *memory.SessionRepository
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewNotificationHandler(repo *memory.SessionRepository, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		repo:   repo,
		hub:    hub,
		logger: log,
	}
}

// ServeWs upgrades a session's connection. Browsers pass the session id as
// the session query parameter since they cannot set headers on the
// handshake; other clients may use X-Session-Id.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Query(serverutils.SessionQuery)
	if sessionID == "" {
		sessionID = c.Get(serverutils.SessionHeader)
	}
	if sessionID == "" {
		return serverutils.ErrSessionRequired
	}

	if _, ok := h.repo.Get(sessionID); !ok {
		h.logger.Warn("NotificationHandler", "Unknown session in WS handshake", map[string]interface{}{"session_id": sessionID})
		return serverutils.ErrSessionNotFound
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(c *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, c, sessionID)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
