// Package recommendation ranks announcements and students by academic
// compatibility and fans out match notifications for new announcements.
package recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation/compat"
)

type announcementRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoommateAnnouncement, error)
	ListActive(ctx context.Context, now time.Time, excludePoster uuid.UUID) ([]domain.RoommateAnnouncement, error)
	ListMatchPending(ctx context.Context, since, now time.Time) ([]domain.RoommateAnnouncement, error)
	ClaimMatchNotification(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type profileRepo interface {
	GetByUserID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUserIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	ListStudents(ctx context.Context, exclude ...uuid.UUID) ([]domain.User, error)
}

type applicationRepo interface {
	LiveApplicantIDs(ctx context.Context, announcementID uuid.UUID) ([]uuid.UUID, error)
}

type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, payload domain.NotificationPayload)
}

// AnnouncementMatch is an announcement scored for one student.
type AnnouncementMatch struct {
	Announcement domain.RoommateAnnouncement
	Score        compat.Score
	Tier         compat.Tier
}

// StudentMatch is a student scored against another student.
type StudentMatch struct {
	User   domain.User
	Score  compat.Score
	Tier   compat.Tier
	Reason string
}

// Service builds ranked recommendation lists.
type Service struct {
	announcements announcementRepo
	profiles      profileRepo
	applications  applicationRepo
	notify        notifier
	cfg           config.RecommendationConfig
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new recommendation Service.
func NewService(
	log *slog.Logger,
	announcements announcementRepo,
	profiles profileRepo,
	applications applicationRepo,
	notify notifier,
	cfg config.RecommendationConfig,
) *Service {
	return &Service{
		announcements: announcements,
		profiles:      profiles,
		applications:  applications,
		notify:        notify,
		cfg:           cfg,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log.With("service", "recommendation"),
	}
}

// normalizeLimit applies the default for non-positive limits and the cap.
func (s *Service) normalizeLimit(limit int) int {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	return limit
}

// profileOf returns userID's academic profile, or the zero profile when the
// user has none on record.
func (s *Service) profileOf(ctx context.Context, userID uuid.UUID) (domain.AcademicProfile, error) {
	u, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AcademicProfile{}, nil
		}
		return domain.AcademicProfile{}, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return u.Profile, nil
}
