package connection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
)

var errOpenRequest = domain.NewConflictError("a pending or accepted connection already exists between these users")

// Send creates a PENDING request from the sender to the receiver and tells
// the receiver about it.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.ConnectionRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.SenderID == input.ReceiverID {
		return nil, domain.NewConflictError("cannot send a connection request to yourself")
	}

	exists, err := s.users.Exists(ctx, input.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("check receiver: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("receiver %s: %w", input.ReceiverID, domain.ErrNotFound)
	}

	var req *domain.ConnectionRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		open, err := s.requests.HasOpenBetween(txCtx, input.SenderID, input.ReceiverID)
		if err != nil {
			return fmt.Errorf("check open requests: %w", err)
		}
		if open {
			return errOpenRequest
		}

		req, err = s.requests.Create(txCtx, &domain.ConnectionRequest{
			ID:         uuid.New(),
			SenderID:   input.SenderID,
			ReceiverID: input.ReceiverID,
			Message:    trimOrNil(input.Message),
			Status:     domain.ConnectionStatusPending,
			CreatedAt:  s.now(),
		})
		if err != nil {
			// A concurrent Send for the same pair won the unique index.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return errOpenRequest
			}
			return fmt.Errorf("create connection request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition("connection_request", string(domain.ConnectionStatusPending))
	s.log.InfoContext(ctx, "connection request sent",
		slog.String("request_id", req.ID.String()),
		slog.String("sender_id", req.SenderID.String()),
		slog.String("receiver_id", req.ReceiverID.String()),
	)

	s.notify.Notify(ctx, req.ReceiverID, domain.NewConnectionRequestPayload{
		RequestID: req.ID,
		SenderID:  req.SenderID,
		Message:   req.Message,
	})

	return req, nil
}
