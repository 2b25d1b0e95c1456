package recommendation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation/compat"
)

// CompatibleStudents ranks every other student against userID.
func (s *Service) CompatibleStudents(ctx context.Context, userID uuid.UUID, limit int) ([]StudentMatch, error) {
	start := time.Now()

	var (
		requester domain.AcademicProfile
		pool      []domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requester, err = s.profileOf(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = s.profiles.ListStudents(gctx, userID)
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := scoreStudents(requester, pool)

	metrics.RecordRecommendation("students", len(pool), time.Since(start))
	return truncate(matches, s.normalizeLimit(limit)), nil
}

// CompatibleApplicants ranks students who have not yet applied to the
// announcement against its poster. Only the poster may ask.
func (s *Service) CompatibleApplicants(ctx context.Context, posterID, announcementID uuid.UUID, limit int) ([]StudentMatch, error) {
	start := time.Now()

	ann, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	if ann.PosterID != posterID {
		return nil, fmt.Errorf("only the poster can list compatible applicants: %w", domain.ErrForbidden)
	}

	var (
		poster  domain.AcademicProfile
		pool    []domain.User
		applied []uuid.UUID
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		poster, err = s.profileOf(gctx, posterID)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = s.profiles.ListStudents(gctx, posterID)
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		applied, err = s.applications.LiveApplicantIDs(gctx, announcementID)
		if err != nil {
			return fmt.Errorf("list applicants: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	skip := make(map[uuid.UUID]struct{}, len(applied))
	for _, id := range applied {
		skip[id] = struct{}{}
	}
	candidates := make([]domain.User, 0, len(pool))
	for _, u := range pool {
		if _, ok := skip[u.ID]; !ok {
			candidates = append(candidates, u)
		}
	}

	matches := scoreStudents(poster, candidates)

	metrics.RecordRecommendation("applicants", len(candidates), time.Since(start))
	return truncate(matches, s.normalizeLimit(limit)), nil
}

func scoreStudents(against domain.AcademicProfile, pool []domain.User) []StudentMatch {
	matches := make([]StudentMatch, len(pool))
	for i, u := range pool {
		score := compat.Compute(against, u.Profile)
		matches[i] = StudentMatch{
			User:   u,
			Score:  score,
			Tier:   compat.Classify(score.Overall),
			Reason: compat.Reason(score),
		}
	}
	sortStudentMatches(matches)
	return matches
}
