package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation/compat"
)

// NotifyMatches sends ROOMMATE_MATCH_FOUND to every student whose profile
// scores at least compat.HighQualityThreshold against the announcement's
// poster and who has no live application to it. Each announcement is fanned
// out at most once; closed or already claimed announcements notify nobody.
// It returns the number of students notified.
func (s *Service) NotifyMatches(ctx context.Context, announcementID uuid.UUID) (int, error) {
	ann, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		return 0, fmt.Errorf("get announcement: %w", err)
	}
	return s.notifyMatches(ctx, ann)
}

// NotifyRecentMatches runs NotifyMatches for every open announcement created
// within lookback that has not been fanned out yet. It stops at the first
// storage error.
func (s *Service) NotifyRecentMatches(ctx context.Context, lookback time.Duration) (int, error) {
	if lookback <= 0 {
		lookback = s.cfg.MatchLookback
	}
	now := s.now()

	anns, err := s.announcements.ListMatchPending(ctx, now.Add(-lookback), now)
	if err != nil {
		return 0, fmt.Errorf("list recent announcements: %w", err)
	}

	total := 0
	for i := range anns {
		n, err := s.notifyMatches(ctx, &anns[i])
		if err != nil {
			return total, err
		}
		total += n
	}

	s.log.InfoContext(ctx, "match notifications sent",
		slog.Int("announcements", len(anns)),
		slog.Int("notified", total),
	)
	return total, nil
}

func (s *Service) notifyMatches(ctx context.Context, ann *domain.RoommateAnnouncement) (int, error) {
	start := time.Now()

	if !ann.AcceptsApplications(s.now()) {
		return 0, nil
	}

	claimed, err := s.announcements.ClaimMatchNotification(ctx, ann.ID, s.now())
	if err != nil {
		return 0, fmt.Errorf("claim match notification: %w", err)
	}
	if !claimed {
		s.log.DebugContext(ctx, "announcement matches already notified",
			slog.String("announcement_id", ann.ID.String()),
		)
		return 0, nil
	}

	var (
		poster   domain.AcademicProfile
		students []domain.User
		applied  []uuid.UUID
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		poster, err = s.profileOf(gctx, ann.PosterID)
		return err
	})
	g.Go(func() error {
		var err error
		applied, err = s.applications.LiveApplicantIDs(gctx, ann.ID)
		if err != nil {
			return fmt.Errorf("list applicants: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	exclude := append([]uuid.UUID{ann.PosterID}, applied...)
	students, err = s.profiles.ListStudents(ctx, exclude...)
	if err != nil {
		return 0, fmt.Errorf("list students: %w", err)
	}

	notified := 0
	for _, u := range students {
		score := compat.Compute(poster, u.Profile)
		if score.Overall < compat.HighQualityThreshold {
			continue
		}
		s.notify.Notify(ctx, u.ID, domain.RoommateMatchFoundPayload{
			AnnouncementID: ann.ID,
			PosterID:       ann.PosterID,
			Score:          score.Overall,
			Tier:           string(compat.Classify(score.Overall)),
		})
		notified++
	}

	metrics.RecordRecommendation("match_fanout", len(students), time.Since(start))
	s.log.DebugContext(ctx, "announcement matches notified",
		slog.String("announcement_id", ann.ID.String()),
		slog.Int("notified", notified),
	)
	return notified, nil
}
