// Package profile reads user accounts and their academic attributes.
// The matching core never writes to users.
package profile

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/roommatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

var columns = []string{
	"id", "name", "email", "role",
	"institute", "field_of_study", "education_level", "age",
	"created_at",
}

// Repo is the ProfileFactSource backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByUserID returns the user with the given id.
func (r *Repo) GetByUserID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder.Select(columns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByUserIDs returns the users that exist among ids, in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByUserIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query, args, err := postgres.Builder.Select(columns...).
		From("users").
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return postgres.CollectRows(rows, scanUser)
}

// ListStudents returns every STUDENT except the excluded ids, newest first
// with id as the tie-break.
func (r *Repo) ListStudents(ctx context.Context, exclude ...uuid.UUID) ([]domain.User, error) {
	b := postgres.Builder.Select(columns...).
		From("users").
		Where(sq.Eq{"role": string(domain.UserRoleStudent)}).
		OrderBy("created_at DESC", "id ASC")
	if len(exclude) > 0 {
		b = b.Where("NOT (id = ANY(?))", exclude)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return postgres.CollectRows(rows, scanUser)
}

// Exists reports whether a user with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return exists, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u     domain.User
		role  string
		level string
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &role,
		&u.Profile.Institute, &u.Profile.FieldOfStudy, &level, &u.Profile.Age,
		&u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.UserRole(role)
	u.Profile.EducationLevel = domain.EducationLevel(level)
	return u, nil
}
