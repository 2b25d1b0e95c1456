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

// PersonalizedRecommendations returns the open announcements of other
// posters, best match first.
func (s *Service) PersonalizedRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]AnnouncementMatch, error) {
	start := time.Now()

	matches, err := s.scoreAnnouncements(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics.RecordRecommendation("personalized", len(matches), time.Since(start))
	return truncate(matches, s.normalizeLimit(limit)), nil
}

// HighQualityMatches is PersonalizedRecommendations restricted to scores at
// or above compat.HighQualityThreshold.
func (s *Service) HighQualityMatches(ctx context.Context, userID uuid.UUID, limit int) ([]AnnouncementMatch, error) {
	start := time.Now()

	matches, err := s.scoreAnnouncements(ctx, userID)
	if err != nil {
		return nil, err
	}

	high := matches[:0]
	for _, m := range matches {
		if m.Score.Overall >= compat.HighQualityThreshold {
			high = append(high, m)
		}
	}

	metrics.RecordRecommendation("high_quality", len(high), time.Since(start))
	return truncate(high, s.normalizeLimit(limit)), nil
}

// scoreAnnouncements loads the requester and the candidate pool in
// parallel, then scores each announcement against its poster's profile.
func (s *Service) scoreAnnouncements(ctx context.Context, userID uuid.UUID) ([]AnnouncementMatch, error) {
	var (
		requester domain.AcademicProfile
		pool      []domain.RoommateAnnouncement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requester, err = s.profileOf(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = s.announcements.ListActive(gctx, s.now(), userID)
		if err != nil {
			return fmt.Errorf("list active announcements: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		return []AnnouncementMatch{}, nil
	}

	posterIDs := make([]uuid.UUID, len(pool))
	for i, a := range pool {
		posterIDs[i] = a.PosterID
	}
	posters, err := loadProfiles(ctx, s.newProfileLoader(), posterIDs)
	if err != nil {
		return nil, fmt.Errorf("load poster profiles: %w", err)
	}

	matches := make([]AnnouncementMatch, len(pool))
	for i, a := range pool {
		score := compat.Compute(requester, posters[i])
		matches[i] = AnnouncementMatch{
			Announcement: a,
			Score:        score,
			Tier:         compat.Classify(score.Overall),
		}
	}
	sortAnnouncementMatches(matches)

	return matches, nil
}
