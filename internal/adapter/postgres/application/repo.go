// Package application persists roommate applications.
package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/roommatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

const entity = "roommate_application"

var columns = []string{
	"id", "applicant_id", "announcement_id", "message", "compatibility_score",
	"status", "applied_at", "responded_at", "response_message",
}

var newestFirst = []string{"applied_at DESC", "id ASC"}

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new application. A second live application for the same
// (announcement, applicant) pair fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.RoommateApplication) (*domain.RoommateApplication, error) {
	query, args, err := postgres.Builder.Insert("roommate_applications").
		Columns("id", "applicant_id", "announcement_id", "message", "compatibility_score", "status", "applied_at").
		Values(a.ID, a.ApplicantID, a.AnnouncementID, a.Message, a.CompatibilityScore, string(a.Status), a.AppliedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	got, err := scanApplication(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, a.ID)
	}
	return &got, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoommateApplication, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.RoommateApplication, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.RoommateApplication, error) {
	b := postgres.Builder.Select(columns...).
		From("roommate_applications").
		Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	a, err := scanApplication(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &a, nil
}

// HasLive reports whether applicantID has a non-withdrawn application to
// announcementID.
func (r *Repo) HasLive(ctx context.Context, announcementID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM roommate_applications
		   WHERE announcement_id = $1 AND applicant_id = $2 AND status <> 'WITHDRAWN')`,
		announcementID, applicantID,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, entity, announcementID)
	}
	return exists, nil
}

// UpdateStatus moves an application to status and stamps the response fields.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, respondedAt *time.Time, responseMessage *string) (*domain.RoommateApplication, error) {
	query, args, err := postgres.Builder.Update("roommate_applications").
		Set("status", string(status)).
		Set("responded_at", respondedAt).
		Set("response_message", responseMessage).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	a, err := scanApplication(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &a, nil
}

// ListByAnnouncement pages through every application to one announcement.
func (r *Repo) ListByAnnouncement(ctx context.Context, announcementID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error) {
	base := postgres.Builder.Select().
		From("roommate_applications").
		Where(sq.Eq{"announcement_id": announcementID})

	res, err := postgres.SelectPage(ctx, postgres.QuerierFromCtx(ctx, r.pool), base, columns, newestFirst, page, scanApplication)
	if err != nil {
		return res, postgres.MapError(err, entity, announcementID)
	}
	return res, nil
}

// ListByApplicant pages through one student's applications.
func (r *Repo) ListByApplicant(ctx context.Context, applicantID uuid.UUID, page domain.Page) (domain.PageResult[domain.RoommateApplication], error) {
	base := postgres.Builder.Select().
		From("roommate_applications").
		Where(sq.Eq{"applicant_id": applicantID})

	res, err := postgres.SelectPage(ctx, postgres.QuerierFromCtx(ctx, r.pool), base, columns, newestFirst, page, scanApplication)
	if err != nil {
		return res, postgres.MapError(err, entity, applicantID)
	}
	return res, nil
}

// LiveApplicantIDs returns the applicants holding a non-withdrawn
// application to announcementID.
func (r *Repo) LiveApplicantIDs(ctx context.Context, announcementID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT applicant_id FROM roommate_applications
		 WHERE announcement_id = $1 AND status <> 'WITHDRAWN'`,
		announcementID,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, announcementID)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, entity, announcementID)
	}
	return ids, nil
}

func scanApplication(row pgx.Row) (domain.RoommateApplication, error) {
	var (
		a      domain.RoommateApplication
		status string
	)
	err := row.Scan(
		&a.ID, &a.ApplicantID, &a.AnnouncementID, &a.Message, &a.CompatibilityScore,
		&status, &a.AppliedAt, &a.RespondedAt, &a.ResponseMessage,
	)
	if err != nil {
		return domain.RoommateApplication{}, err
	}
	a.Status = domain.ApplicationStatus(status)
	return a, nil
}
