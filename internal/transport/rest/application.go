package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/service/application"
)

type applicationService interface {
	Apply(ctx context.Context, input application.ApplyInput) (*domain.RoommateApplication, error)
	Respond(ctx context.Context, input application.RespondInput) (*domain.RoommateApplication, error)
	Withdraw(ctx context.Context, applicationID, applicantID uuid.UUID) (*domain.RoommateApplication, error)
	ListForAnnouncement(ctx context.Context, announcementID, requesterID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error)
	ListMine(ctx context.Context, applicantID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error)
	Get(ctx context.Context, applicationID, requesterID uuid.UUID) (*domain.RoommateApplication, error)
}

// ApplicationHandler serves the roommate application endpoints.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "application")}
}

// Apply handles POST /announcements/{id}/applications.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	announcementID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Apply(r.Context(), application.ApplyInput{
		ApplicantID:    userID,
		AnnouncementID: announcementID,
		Message:        req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// Respond handles POST /applications/{id}/respond.
func (h *ApplicationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	applicationID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req respondRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Respond(r.Context(), application.RespondInput{
		ApplicationID:   applicationID,
		ResponderID:     userID,
		Decision:        req.Decision,
		ResponseMessage: req.ResponseMessage,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	applicationID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Get(r.Context(), applicationID, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Withdraw handles POST /applications/{id}/withdraw.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	applicationID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Withdraw(r.Context(), applicationID, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// ListForAnnouncement handles GET /announcements/{id}/applications.
func (h *ApplicationHandler) ListForAnnouncement(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	announcementID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ListForAnnouncement(r.Context(), announcementID, userID, page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(res, page, toApplicationResponse))
}

// ListMine handles GET /applications/mine.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.svc.ListMine(r.Context(), userID, page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(res, page, toApplicationResponse))
}
