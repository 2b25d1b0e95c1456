package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
)

// Respond records the poster's decision on a PENDING application and tells
// the applicant. Other applications to the same announcement are untouched.
func (s *Service) Respond(ctx context.Context, input RespondInput) (*domain.RoommateApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.ApplicationStatus(input.Decision)
	responseMessage := trimOrNil(input.ResponseMessage)

	var app *domain.RoommateApplication
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.applications.GetByIDForUpdate(txCtx, input.ApplicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		ann, err := s.announcements.GetByID(txCtx, current.AnnouncementID)
		if err != nil {
			return fmt.Errorf("get announcement: %w", err)
		}
		if ann.PosterID != input.ResponderID {
			return fmt.Errorf("only the poster can respond: %w", domain.ErrForbidden)
		}
		if current.Status.IsTerminal() {
			return domain.NewStateError("application", string(current.Status), "respond")
		}

		respondedAt := s.now()
		app, err = s.applications.UpdateStatus(txCtx, current.ID, status, &respondedAt, responseMessage)
		if err != nil {
			return fmt.Errorf("update application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition("roommate_application", string(app.Status))
	s.log.InfoContext(ctx, "roommate application answered",
		slog.String("application_id", app.ID.String()),
		slog.String("status", string(app.Status)),
	)

	s.notify.Notify(ctx, app.ApplicantID, domain.RoommateApplicationResponsePayload{
		ApplicationID:   app.ID,
		AnnouncementID:  app.AnnouncementID,
		Status:          app.Status,
		ResponseMessage: app.ResponseMessage,
	})

	return app, nil
}

// Withdraw lets the applicant retract a PENDING application. The
// announcement's application counter is left as is.
func (s *Service) Withdraw(ctx context.Context, applicationID, applicantID uuid.UUID) (*domain.RoommateApplication, error) {
	var app *domain.RoommateApplication
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.applications.GetByIDForUpdate(txCtx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}
		if current.ApplicantID != applicantID {
			return fmt.Errorf("only the applicant can withdraw: %w", domain.ErrForbidden)
		}
		if current.Status.IsTerminal() {
			return domain.NewStateError("application", string(current.Status), "withdraw")
		}

		app, err = s.applications.UpdateStatus(txCtx, current.ID, domain.ApplicationStatusWithdrawn, nil, nil)
		if err != nil {
			return fmt.Errorf("withdraw application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition("roommate_application", string(domain.ApplicationStatusWithdrawn))
	s.log.InfoContext(ctx, "roommate application withdrawn",
		slog.String("application_id", app.ID.String()),
	)

	return app, nil
}
