package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	clusterChannel = "knowex:ws:events"
	broadcastAll   = "*"
)

type envelope struct {
	Type string           `json:"type"`
	Data dto.Notification `json:"data"`
}

// clusterMessage travels over Redis so every instance can reach the
// sessions connected to it.
type clusterMessage struct {
	Origin          string          `json:"origin"`
	TargetSessionID string          `json:"target_session_id"`
	Message         json.RawMessage `json:"message"`
}

type Hub struct {
	// instance id, used to skip our own Redis publications
	id string

	// SessionID -> connected clients (one per browser tab)
	clients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex

	// Optional; nil keeps delivery local to this instance.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		id:         uuid.NewString(),
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

// Run serves registrations until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for sessionID, clients := range h.clients {
				for client := range clients {
					close(client.Send)
				}
				delete(h.clients, sessionID)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.SessionID] == nil {
				h.clients[client.SessionID] = make(map[*Client]struct{})
			}
			h.clients[client.SessionID][client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.SessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.SessionID)
		h.logger.Info("Hub", "Session has no connected clients", map[string]interface{}{"session_id": client.SessionID})
	}
}

// registerClient and unregisterClient give up once the hub has stopped.
func (h *Hub) registerClient(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Send pushes a notification to every client of sessionID, here and on the
// other instances.
func (h *Hub) Send(sessionID string, notification dto.Notification) {
	data, err := json.Marshal(envelope{Type: "notification", Data: notification})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode notification", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(sessionID, data)
	h.publish(sessionID, data)
}

// Broadcast pushes a notification to every connected client.
func (h *Hub) Broadcast(notification dto.Notification) {
	h.Send(broadcastAll, notification)
}

// Disconnect closes every client of sessionID, e.g. when the session ends.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[sessionID] {
		close(client.Send)
	}
	delete(h.clients, sessionID)
}

// ClientCount reports how many clients of sessionID are connected here.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) deliverLocal(sessionID string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	deliver := func(client *Client) {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"session_id": client.SessionID})
		}
	}

	if sessionID == broadcastAll {
		for _, clients := range h.clients {
			for client := range clients {
				deliver(client)
			}
		}
		return
	}
	for client := range h.clients[sessionID] {
		deliver(client)
	}
}

func (h *Hub) publish(sessionID string, data []byte) {
	if h.rdb == nil {
		return
	}
	payload, _ := json.Marshal(clusterMessage{Origin: h.id, TargetSessionID: sessionID, Message: data})
	if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			if payload.Origin == h.id {
				continue
			}
			h.deliverLocal(payload.TargetSessionID, payload.Message)
		}
	}
}
