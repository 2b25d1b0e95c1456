package connection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
)

// Respond records the receiver's decision on a PENDING request and tells
// the sender.
func (s *Service) Respond(ctx context.Context, input RespondInput) (*domain.ConnectionRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.ConnectionStatus(input.Decision)
	responseMessage := trimOrNil(input.ResponseMessage)

	var req *domain.ConnectionRequest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.requests.GetByIDForUpdate(txCtx, input.RequestID)
		if err != nil {
			return fmt.Errorf("get connection request: %w", err)
		}
		if current.ReceiverID != input.ResponderID {
			return fmt.Errorf("only the receiver can respond: %w", domain.ErrForbidden)
		}
		if !current.IsPending() {
			return domain.NewStateError("connection request", string(current.Status), "respond")
		}

		req, err = s.requests.UpdateStatus(txCtx, current.ID, status, s.now(), responseMessage)
		if err != nil {
			return fmt.Errorf("update connection request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition("connection_request", string(req.Status))
	s.log.InfoContext(ctx, "connection request answered",
		slog.String("request_id", req.ID.String()),
		slog.String("status", string(req.Status)),
	)

	var payload domain.NotificationPayload
	if req.IsAccepted() {
		payload = domain.ConnectionRequestAcceptedPayload{
			RequestID:       req.ID,
			ReceiverID:      req.ReceiverID,
			ResponseMessage: req.ResponseMessage,
		}
	} else {
		payload = domain.ConnectionRequestRejectedPayload{
			RequestID:       req.ID,
			ReceiverID:      req.ReceiverID,
			ResponseMessage: req.ResponseMessage,
		}
	}
	s.notify.Notify(ctx, req.SenderID, payload)

	return req, nil
}
