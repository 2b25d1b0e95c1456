package ws

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const maxMessageSize = 4 * 1024

// Client is one WebSocket connection owned by a user.
type Client struct {
	userID       uuid.UUID
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	writeTimeout time.Duration
	pongTimeout  time.Duration
	log          *slog.Logger
}

func newClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID, opts Options) *Client {
	return &Client{
		userID:       userID,
		hub:          hub,
		conn:         conn,
		send:         make(chan []byte, opts.SendBuffer),
		writeTimeout: opts.WriteTimeout,
		pongTimeout:  opts.PongTimeout,
		log:          hub.log,
	}
}

// readPump only services control frames; clients do not send data.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("unexpected websocket close", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.pongTimeout * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
