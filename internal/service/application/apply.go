package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation/compat"
)

var errLiveApplication = domain.NewConflictError("you already have an active application for this announcement")

// Apply creates a PENDING application with a frozen compatibility score,
// bumps the announcement's application counter and tells the poster.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*domain.RoommateApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ann, err := s.announcements.GetByID(ctx, input.AnnouncementID)
	if err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	if ann.PosterID == input.ApplicantID {
		return nil, domain.NewConflictError("cannot apply to your own announcement")
	}

	now := s.now()
	if !ann.AcceptsApplications(now) {
		state := string(ann.Status)
		if ann.Status == domain.AnnouncementStatusActive {
			state = string(domain.AnnouncementStatusExpired)
		}
		return nil, domain.NewStateError("announcement", state, "apply")
	}

	applicantProfile, err := s.profileOf(ctx, input.ApplicantID)
	if err != nil {
		return nil, err
	}
	posterProfile, err := s.profileOf(ctx, ann.PosterID)
	if err != nil {
		return nil, err
	}
	score := compat.Compute(applicantProfile, posterProfile)

	var app *domain.RoommateApplication
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		live, err := s.applications.HasLive(txCtx, ann.ID, input.ApplicantID)
		if err != nil {
			return fmt.Errorf("check live application: %w", err)
		}
		if live {
			return errLiveApplication
		}

		app, err = s.applications.Create(txCtx, &domain.RoommateApplication{
			ID:                 uuid.New(),
			ApplicantID:        input.ApplicantID,
			AnnouncementID:     ann.ID,
			Message:            strings.TrimSpace(input.Message),
			CompatibilityScore: score.Overall,
			Status:             domain.ApplicationStatusPending,
			AppliedAt:          now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return errLiveApplication
			}
			return fmt.Errorf("create application: %w", err)
		}

		if err := s.announcements.IncrementApplicationCount(txCtx, ann.ID); err != nil {
			return fmt.Errorf("increment application count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition("roommate_application", string(domain.ApplicationStatusPending))
	s.log.InfoContext(ctx, "roommate application created",
		slog.String("application_id", app.ID.String()),
		slog.String("announcement_id", ann.ID.String()),
		slog.String("applicant_id", app.ApplicantID.String()),
		slog.Float64("score", app.CompatibilityScore),
	)

	s.notify.Notify(ctx, ann.PosterID, domain.NewRoommateApplicationPayload{
		ApplicationID:      app.ID,
		AnnouncementID:     ann.ID,
		ApplicantID:        app.ApplicantID,
		CompatibilityScore: app.CompatibilityScore,
	})

	return app, nil
}
