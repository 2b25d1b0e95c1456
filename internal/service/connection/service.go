// Package connection implements the connection-request state machine
// between students: PENDING moves to ACCEPTED or REJECTED exactly once.
package connection

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

type requestRepo interface {
	Create(ctx context.Context, req *domain.ConnectionRequest) (*domain.ConnectionRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ConnectionRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ConnectionRequest, error)
	HasOpenBetween(ctx context.Context, a, b uuid.UUID) (bool, error)
	ExistsAccepted(ctx context.Context, a, b uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ConnectionStatus, respondedAt time.Time, responseMessage *string) (*domain.ConnectionRequest, error)
	ListSent(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error)
	ListReceived(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error)
	ListNetwork(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, payload domain.NotificationPayload)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages connection requests.
type Service struct {
	requests requestRepo
	users    userRepo
	notify   notifier
	tx       txManager
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new connection Service.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	users userRepo,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		requests: requests,
		users:    users,
		notify:   notify,
		tx:       tx,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With("service", "connection"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
