package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/service/connection"
)

type connectionService interface {
	Send(ctx context.Context, input connection.SendInput) (*domain.ConnectionRequest, error)
	Respond(ctx context.Context, input connection.RespondInput) (*domain.ConnectionRequest, error)
	ListSent(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error)
	ListReceived(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error)
	ListNetwork(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error)
	Get(ctx context.Context, requestID, userID uuid.UUID) (*domain.ConnectionRequest, error)
	AreConnected(ctx context.Context, a, b uuid.UUID) (bool, error)
}

// ConnectionHandler serves the connection request endpoints.
type ConnectionHandler struct {
	svc connectionService
	log *slog.Logger
}

// NewConnectionHandler creates a ConnectionHandler.
func NewConnectionHandler(svc connectionService, logger *slog.Logger) *ConnectionHandler {
	return &ConnectionHandler{svc: svc, log: logger.With("handler", "connection")}
}

// Send handles POST /connections.
func (h *ConnectionHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req sendConnectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cr, err := h.svc.Send(r.Context(), connection.SendInput{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toConnectionResponse(cr, userID))
}

// Respond handles POST /connections/{id}/respond.
func (h *ConnectionHandler) Respond(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	requestID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req respondRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cr, err := h.svc.Respond(r.Context(), connection.RespondInput{
		RequestID:       requestID,
		ResponderID:     userID,
		Decision:        req.Decision,
		ResponseMessage: req.ResponseMessage,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConnectionResponse(cr, userID))
}

// Get handles GET /connections/{id}.
func (h *ConnectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	requestID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cr, err := h.svc.Get(r.Context(), requestID, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConnectionResponse(cr, userID))
}

// Status handles GET /connections/status/{userId}: whether the caller and
// userId share an accepted connection.
func (h *ConnectionHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	otherID, err := pathUUID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ok, err := h.svc.AreConnected(r.Context(), userID, otherID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, connectionStatusResponse{UserID: otherID, Connected: ok})
}

// ListSent handles GET /connections/sent.
func (h *ConnectionHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListSent)
}

// ListReceived handles GET /connections/received.
func (h *ConnectionHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListReceived)
}

// ListNetwork handles GET /connections/network.
func (h *ConnectionHandler) ListNetwork(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListNetwork)
}

type connectionLister func(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error)

func (h *ConnectionHandler) list(w http.ResponseWriter, r *http.Request, fn connectionLister) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := fn(r.Context(), userID, page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(res, page, connectionView(userID)))
}
