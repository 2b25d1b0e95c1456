// Package connection persists connection requests between students.
package connection

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

const entity = "connection_request"

var columns = []string{
	"id", "sender_id", "receiver_id", "message", "status",
	"created_at", "responded_at", "response_message",
}

var newestFirst = []string{"created_at DESC", "id ASC"}

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a PENDING request. If the pair already has a PENDING or
// ACCEPTED request in either direction the partial unique index rejects it
// and Create returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, req *domain.ConnectionRequest) (*domain.ConnectionRequest, error) {
	query, args, err := postgres.Builder.Insert("connection_requests").
		Columns("id", "sender_id", "receiver_id", "message", "status", "created_at").
		Values(req.ID, req.SenderID, req.ReceiverID, req.Message, string(req.Status), req.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	got, err := scanRequest(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, req.ID)
	}
	return &got, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ConnectionRequest, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ConnectionRequest, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.ConnectionRequest, error) {
	b := postgres.Builder.Select(columns...).
		From("connection_requests").
		Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	req, err := scanRequest(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &req, nil
}

// HasOpenBetween reports whether a PENDING or ACCEPTED request links a and b
// in either direction.
func (r *Repo) HasOpenBetween(ctx context.Context, a, b uuid.UUID) (bool, error) {
	return r.existsBetween(ctx, a, b, domain.ConnectionStatusPending, domain.ConnectionStatusAccepted)
}

// ExistsAccepted reports whether a and b are connected.
func (r *Repo) ExistsAccepted(ctx context.Context, a, b uuid.UUID) (bool, error) {
	return r.existsBetween(ctx, a, b, domain.ConnectionStatusAccepted)
}

func (r *Repo) existsBetween(ctx context.Context, a, b uuid.UUID, statuses ...domain.ConnectionStatus) (bool, error) {
	st := make([]string, len(statuses))
	for i, s := range statuses {
		st[i] = string(s)
	}

	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM connection_requests
		   WHERE ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		     AND status = ANY($3))`,
		a, b, st,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, entity, uuid.Nil)
	}
	return exists, nil
}

// UpdateStatus moves a request to status and stamps the response fields.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ConnectionStatus, respondedAt time.Time, responseMessage *string) (*domain.ConnectionRequest, error) {
	query, args, err := postgres.Builder.Update("connection_requests").
		Set("status", string(status)).
		Set("responded_at", respondedAt).
		Set("response_message", responseMessage).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	req, err := scanRequest(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &req, nil
}

// ListSent pages through requests userID has sent, in any status.
func (r *Repo) ListSent(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error) {
	return r.page(ctx, sq.Eq{"sender_id": userID}, page, userID)
}

// ListReceived pages through requests addressed to userID, in any status.
func (r *Repo) ListReceived(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error) {
	return r.page(ctx, sq.Eq{"receiver_id": userID}, page, userID)
}

// ListNetwork pages through ACCEPTED requests where userID is either side.
func (r *Repo) ListNetwork(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error) {
	pred := sq.And{
		sq.Eq{"status": string(domain.ConnectionStatusAccepted)},
		sq.Or{sq.Eq{"sender_id": userID}, sq.Eq{"receiver_id": userID}},
	}
	return r.page(ctx, pred, page, userID)
}

func (r *Repo) page(ctx context.Context, pred sq.Sqlizer, page domain.Page, userID uuid.UUID) (domain.PageResult[domain.ConnectionRequest], error) {
	base := postgres.Builder.Select().From("connection_requests").Where(pred)

	res, err := postgres.SelectPage(ctx, postgres.QuerierFromCtx(ctx, r.pool), base, columns, newestFirst, page, scanRequest)
	if err != nil {
		return res, postgres.MapError(err, entity, userID)
	}
	return res, nil
}

func scanRequest(row pgx.Row) (domain.ConnectionRequest, error) {
	var (
		req    domain.ConnectionRequest
		status string
	)
	err := row.Scan(
		&req.ID, &req.SenderID, &req.ReceiverID, &req.Message, &status,
		&req.CreatedAt, &req.RespondedAt, &req.ResponseMessage,
	)
	if err != nil {
		return domain.ConnectionRequest{}, err
	}
	req.Status = domain.ConnectionStatus(status)
	return req, nil
}
