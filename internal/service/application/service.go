// Package application implements the roommate-application state machine:
// PENDING moves to ACCEPTED, REJECTED or WITHDRAWN exactly once.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

type applicationRepo interface {
	Create(ctx context.Context, a *domain.RoommateApplication) (*domain.RoommateApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoommateApplication, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.RoommateApplication, error)
	HasLive(ctx context.Context, announcementID, applicantID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, respondedAt *time.Time, responseMessage *string) (*domain.RoommateApplication, error)
	ListByAnnouncement(ctx context.Context, announcementID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error)
}

type announcementRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoommateAnnouncement, error)
	IncrementApplicationCount(ctx context.Context, id uuid.UUID) error
}

type profileRepo interface {
	GetByUserID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, payload domain.NotificationPayload)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages roommate applications.
type Service struct {
	applications  applicationRepo
	announcements announcementRepo
	profiles      profileRepo
	notify        notifier
	tx            txManager
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new application Service.
func NewService(
	log *slog.Logger,
	applications applicationRepo,
	announcements announcementRepo,
	profiles profileRepo,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		applications:  applications,
		announcements: announcements,
		profiles:      profiles,
		notify:        notify,
		tx:            tx,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log.With("service", "application"),
	}
}

// profileOf returns the academic profile of userID, or the zero profile if
// the user has none on record.
func (s *Service) profileOf(ctx context.Context, userID uuid.UUID) (domain.AcademicProfile, error) {
	u, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AcademicProfile{}, nil
		}
		return domain.AcademicProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return u.Profile, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
