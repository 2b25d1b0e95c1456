// Package ws delivers notifications to connected users over WebSocket.
// A user may hold several connections; each receives every notification
// addressed to that user.
package ws

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
)

// Encoder turns a notification into the bytes written to the socket.
type Encoder func(domain.Notification) ([]byte, error)

// Hub tracks live clients per user.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
	encode  Encoder
	log     *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(encode Encoder, log *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		encode:  encode,
		log:     log.With("component", "ws_hub"),
	}
}

// Register adds c to its user's set.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.mu.Unlock()

	metrics.WebSocketClients.Inc()
	h.log.Debug("websocket client connected", slog.String("user_id", c.userID.String()))
}

// Unregister removes c and closes its send queue. Calling it twice is safe.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, ok := set[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)
	h.mu.Unlock()

	metrics.WebSocketClients.Dec()
	h.log.Debug("websocket client disconnected", slog.String("user_id", c.userID.String()))
}

// Deliver queues n on every connection of its recipient. Clients whose
// buffer is full miss the message; delivery never blocks.
func (h *Hub) Deliver(n domain.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.clients[n.RecipientID]
	if len(set) == 0 {
		return
	}

	msg, err := h.encode(n)
	if err != nil {
		h.log.Warn("encode notification for websocket",
			slog.String("type", n.Type.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	for c := range set {
		select {
		case c.send <- msg:
		default:
			metrics.WebSocketDropped.Inc()
			h.log.Warn("websocket send buffer full, dropping notification",
				slog.String("user_id", n.RecipientID.String()),
				slog.String("type", n.Type.String()),
			)
		}
	}
}

// ClientCount returns the number of live connections for userID.
func (h *Hub) ClientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// CloseAll drops every client. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	var all []*Client
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.Unlock()

	for _, c := range all {
		h.Unregister(c)
	}
}
