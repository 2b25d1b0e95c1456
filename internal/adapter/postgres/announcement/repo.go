// Package announcement implements read access to roommate announcements
// plus the application counter and match fan-out stamp the matching core
// maintains.
package announcement

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/roommatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

const entity = "roommate_announcement"

var columns = []string{
	"id", "poster_id", "title",
	"monthly_rent", "rooms", "move_in_date", "lease_duration_months",
	"pref_gender", "pref_age_min", "pref_age_max", "lifestyle_tags", "max_roommates",
	"status", "application_count", "created_at", "expires_at", "match_notified_at",
}

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns one announcement regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoommateAnnouncement, error) {
	query, args, err := postgres.Builder.Select(columns...).
		From("roommate_announcements").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	a, err := scanAnnouncement(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &a, nil
}

// ListActive returns ACTIVE announcements that have not expired at now and
// were not posted by excludePoster. Pass uuid.Nil to include every poster.
func (r *Repo) ListActive(ctx context.Context, now time.Time, excludePoster uuid.UUID) ([]domain.RoommateAnnouncement, error) {
	b := activeAt(now)
	if excludePoster != uuid.Nil {
		b = b.Where(sq.NotEq{"poster_id": excludePoster})
	}
	return r.list(ctx, b)
}

// ListMatchPending returns announcements that are open at now, were created
// at or after since and have not been claimed by the match fan-out.
func (r *Repo) ListMatchPending(ctx context.Context, since, now time.Time) ([]domain.RoommateAnnouncement, error) {
	return r.list(ctx, activeAt(now).
		Where(sq.GtOrEq{"created_at": since}).
		Where(sq.Eq{"match_notified_at": nil}))
}

// ClaimMatchNotification stamps match_notified_at if it is still unset and
// reports whether this call set it. Concurrent callers get true at most once.
func (r *Repo) ClaimMatchNotification(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE roommate_announcements SET match_notified_at = $2 WHERE id = $1 AND match_notified_at IS NULL`,
		id, at,
	)
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return tag.RowsAffected() == 1, nil
}

// IncrementApplicationCount bumps application_count by one in place. Call it
// inside the transaction that inserts the application.
func (r *Repo) IncrementApplicationCount(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE roommate_announcements SET application_count = application_count + 1 WHERE id = $1`,
		id,
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

func activeAt(now time.Time) sq.SelectBuilder {
	return postgres.Builder.Select(columns...).
		From("roommate_announcements").
		Where(sq.Eq{"status": string(domain.AnnouncementStatusActive)}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": now}}).
		OrderBy("created_at DESC", "id ASC")
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.RoommateAnnouncement, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	items, err := postgres.CollectRows(rows, scanAnnouncement)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return items, nil
}

func scanAnnouncement(row pgx.Row) (domain.RoommateAnnouncement, error) {
	var (
		a      domain.RoommateAnnouncement
		status string
	)
	err := row.Scan(
		&a.ID, &a.PosterID, &a.Title,
		&a.Terms.MonthlyRent, &a.Terms.Rooms, &a.Terms.MoveInDate, &a.Terms.LeaseDurationMonths,
		&a.Preferences.Gender, &a.Preferences.AgeMin, &a.Preferences.AgeMax,
		&a.Preferences.LifestyleTags, &a.Preferences.MaxRoommates,
		&status, &a.ApplicationCount, &a.CreatedAt, &a.ExpiresAt, &a.MatchNotifiedAt,
	)
	if err != nil {
		return domain.RoommateAnnouncement{}, err
	}
	a.Status = domain.AnnouncementStatus(status)
	return a, nil
}
