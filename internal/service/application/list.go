package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

// Get returns one application. The applicant and the announcement's poster
// may read it.
func (s *Service) Get(ctx context.Context, applicationID, requesterID uuid.UUID) (*domain.RoommateApplication, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app.ApplicantID == requesterID {
		return app, nil
	}

	ann, err := s.announcements.GetByID(ctx, app.AnnouncementID)
	if err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	if ann.PosterID != requesterID {
		return nil, fmt.Errorf("only the applicant or the poster can read an application: %w", domain.ErrForbidden)
	}
	return app, nil
}

// ListForAnnouncement returns the applications to an announcement. Only its
// poster may read them.
func (s *Service) ListForAnnouncement(ctx context.Context, announcementID, requesterID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error) {
	ann, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		return domain.PageResult[domain.RoommateApplication]{}, fmt.Errorf("get announcement: %w", err)
	}
	if ann.PosterID != requesterID {
		return domain.PageResult[domain.RoommateApplication]{}, fmt.Errorf("only the poster can list applications: %w", domain.ErrForbidden)
	}

	res, err := s.applications.ListByAnnouncement(ctx, announcementID, page.Normalize())
	if err != nil {
		return domain.PageResult[domain.RoommateApplication]{}, fmt.Errorf("list applications: %w", err)
	}
	return res, nil
}

// ListMine returns the applicant's own applications, newest first.
func (s *Service) ListMine(ctx context.Context, applicantID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error) {
	res, err := s.applications.ListByApplicant(ctx, applicantID, page.Normalize())
	if err != nil {
		return domain.PageResult[domain.RoommateApplication]{}, fmt.Errorf("list my applications: %w", err)
	}
	return res, nil
}
