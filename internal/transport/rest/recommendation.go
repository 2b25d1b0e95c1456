package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation"
)

type recommendationService interface {
	PersonalizedRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.AnnouncementMatch, error)
	HighQualityMatches(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.AnnouncementMatch, error)
	CompatibleStudents(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.StudentMatch, error)
	CompatibleApplicants(ctx context.Context, posterID, announcementID uuid.UUID, limit int) ([]recommendation.StudentMatch, error)
}

// RecommendationHandler serves the ranked recommendation endpoints.
type RecommendationHandler struct {
	svc recommendationService
	log *slog.Logger
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(svc recommendationService, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{svc: svc, log: logger.With("handler", "recommendation")}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

// Personalized handles GET /recommendations.
func (h *RecommendationHandler) Personalized(w http.ResponseWriter, r *http.Request) {
	h.announcements(w, r, h.svc.PersonalizedRecommendations)
}

// HighQuality handles GET /recommendations/high-quality.
func (h *RecommendationHandler) HighQuality(w http.ResponseWriter, r *http.Request) {
	h.announcements(w, r, h.svc.HighQualityMatches)
}

// Students handles GET /recommendations/students.
func (h *RecommendationHandler) Students(w http.ResponseWriter, r *http.Request) {
	userID, limit, ok := h.callerAndLimit(w, r)
	if !ok {
		return
	}
	matches, err := h.svc.CompatibleStudents(r.Context(), userID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[studentMatchResponse]{Items: toStudentMatches(matches)})
}

// Applicants handles GET /announcements/{id}/compatible-applicants.
func (h *RecommendationHandler) Applicants(w http.ResponseWriter, r *http.Request) {
	userID, limit, ok := h.callerAndLimit(w, r)
	if !ok {
		return
	}
	announcementID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	matches, err := h.svc.CompatibleApplicants(r.Context(), userID, announcementID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[studentMatchResponse]{Items: toStudentMatches(matches)})
}

type announcementRanker func(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.AnnouncementMatch, error)

func (h *RecommendationHandler) announcements(w http.ResponseWriter, r *http.Request, fn announcementRanker) {
	userID, limit, ok := h.callerAndLimit(w, r)
	if !ok {
		return
	}
	matches, err := fn(r.Context(), userID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[announcementMatchResponse]{Items: toAnnouncementMatches(matches)})
}

func (h *RecommendationHandler) callerAndLimit(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	userID, err := callerID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, 0, false
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, 0, false
	}
	return userID, limit, true
}
