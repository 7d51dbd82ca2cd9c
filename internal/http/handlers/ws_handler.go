package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/adcraft/backend/internal/auth"
	"github.com/adcraft/backend/internal/events"
	"github.com/adcraft/backend/internal/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SnapshotFunc returns the current state of a session.
type SnapshotFunc func(id uuid.UUID) (models.SessionSnapshot, error)

// wsClient serialises writes; websocket connections do not allow concurrent writers.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// WSHub pushes session events to the browsers holding that session.
type WSHub struct {
	secret     string
	subscriber events.Subscriber
	snapshot   SnapshotFunc
	log        *zap.Logger
	mu         sync.RWMutex
	clients    map[uuid.UUID][]*wsClient
}

func NewWSHub(secret string, subscriber events.Subscriber, snapshot SnapshotFunc, log *zap.Logger) *WSHub {
	return &WSHub{
		secret:     secret,
		subscriber: subscriber,
		snapshot:   snapshot,
		log:        log,
		clients:    make(map[uuid.UUID][]*wsClient),
	}
}

func (h *WSHub) Start(ctx context.Context) error {
	return h.subscriber.Subscribe(ctx, events.StreamSessions, h.dispatch)
}

func (h *WSHub) dispatch(event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := append([]*wsClient(nil), h.clients[event.SessionID]...)
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			h.log.Debug("ws write failed", zap.String("session_id", event.SessionID.String()), zap.Error(err))
		}
	}
}

func (h *WSHub) register(sessionID uuid.UUID, c *wsClient) {
	h.mu.Lock()
	h.clients[sessionID] = append(h.clients[sessionID], c)
	h.mu.Unlock()
}

func (h *WSHub) unregister(sessionID uuid.UUID, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[sessionID]
	for i, existing := range clients {
		if existing == c {
			h.clients[sessionID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.clients[sessionID]) == 0 {
		delete(h.clients, sessionID)
	}
}

// WSUpgradeMiddleware checks for websocket upgrade
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *WSHub) HandleWS(conn *websocket.Conn) {
	client := &wsClient{conn: conn}

	tokenStr := conn.Query("token")
	if tokenStr == "" {
		_ = client.write([]byte(`{"error":"missing token"}`))
		conn.Close()
		return
	}

	claims, err := auth.ParseSessionToken(h.secret, tokenStr)
	if err != nil {
		_ = client.write([]byte(`{"error":"invalid token"}`))
		conn.Close()
		return
	}
	sessionID := claims.SessionID

	snap, err := h.snapshot(sessionID)
	if err != nil {
		_ = client.write([]byte(`{"error":"session not found"}`))
		conn.Close()
		return
	}

	h.register(sessionID, client)
	defer func() {
		h.unregister(sessionID, client)
		conn.Close()
	}()

	// Initial state, so a reconnecting page does not miss an outcome.
	if data, err := json.Marshal(events.Event{
		Type:      events.EventSessionStateChanged,
		SessionID: sessionID,
		At:        snap.UpdatedAt,
		Payload:   map[string]any{"session": snap},
	}); err == nil {
		_ = client.write(data)
	}

	// Read loop (keep alive / pings)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
