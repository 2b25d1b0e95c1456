package connection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

// Get returns one request. Only its sender and receiver may read it.
func (s *Service) Get(ctx context.Context, requestID, userID uuid.UUID) (*domain.ConnectionRequest, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get connection request: %w", err)
	}
	if !req.Involves(userID) {
		return nil, fmt.Errorf("only participants can read a connection request: %w", domain.ErrForbidden)
	}
	return req, nil
}

// ListSent returns requests the user has sent, newest first.
func (s *Service) ListSent(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error) {
	res, err := s.requests.ListSent(ctx, userID, page.Normalize())
	if err != nil {
		return domain.PageResult[domain.ConnectionRequest]{}, fmt.Errorf("list sent requests: %w", err)
	}
	return res, nil
}

// ListReceived returns requests addressed to the user, newest first.
func (s *Service) ListReceived(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error) {
	res, err := s.requests.ListReceived(ctx, userID, page.Normalize())
	if err != nil {
		return domain.PageResult[domain.ConnectionRequest]{}, fmt.Errorf("list received requests: %w", err)
	}
	return res, nil
}

// ListNetwork returns ACCEPTED requests on either side of the user.
func (s *Service) ListNetwork(ctx context.Context, userID uuid.UUID, page domain.Page) (domain.PageResult[domain.ConnectionRequest], error) {
	res, err := s.requests.ListNetwork(ctx, userID, page.Normalize())
	if err != nil {
		return domain.PageResult[domain.ConnectionRequest]{}, fmt.Errorf("list network: %w", err)
	}
	return res, nil
}

// AreConnected reports whether a and b share an ACCEPTED request.
func (s *Service) AreConnected(ctx context.Context, a, b uuid.UUID) (bool, error) {
	if a == b {
		return false, nil
	}
	ok, err := s.requests.ExistsAccepted(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("check connection: %w", err)
	}
	return ok, nil
}
