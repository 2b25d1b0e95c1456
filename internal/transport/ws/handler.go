package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/roommatch-backend/pkg/ctxutil"
)

// Options tunes per-connection behavior.
type Options struct {
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	SendBuffer   int
	// CheckOrigin overrides the upgrader's origin check. Nil accepts all.
	CheckOrigin func(r *http.Request) bool
}

// OptionsFromConfig maps the notifications config onto Options.
func OptionsFromConfig(cfg config.NotificationsConfig) Options {
	return Options{
		WriteTimeout: cfg.WSWriteTimeout,
		PongTimeout:  cfg.WSPongTimeout,
		SendBuffer:   cfg.WSSendBuffer,
	}
}

func (o Options) withDefaults() Options {
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.PongTimeout <= 0 {
		o.PongTimeout = 60 * time.Second
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = 32
	}
	if o.CheckOrigin == nil {
		o.CheckOrigin = func(*http.Request) bool { return true }
	}
	return o
}

// Handler upgrades authenticated requests and attaches them to the hub.
type Handler struct {
	hub      *Hub
	opts     Options
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a Handler. Requests must already carry a user ID in
// their context.
func NewHandler(hub *Hub, opts Options, log *slog.Logger) *Handler {
	opts = opts.withDefaults()
	return &Handler{
		hub:  hub,
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     opts.CheckOrigin,
		},
		log: log.With("handler", "ws"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		middleware.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := newClient(h.hub, conn, userID, h.opts)
	h.hub.Register(c)

	go c.writePump()
	go c.readPump()
}
