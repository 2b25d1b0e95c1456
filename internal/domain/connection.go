package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionRequest links two students. Once ACCEPTED it is immutable and
// stands for a bidirectional network edge.
type ConnectionRequest struct {
	ID              uuid.UUID
	SenderID        uuid.UUID
	ReceiverID      uuid.UUID
	Message         *string
	Status          ConnectionStatus
	CreatedAt       time.Time
	RespondedAt     *time.Time
	ResponseMessage *string
}

func (r *ConnectionRequest) IsPending() bool  { return r.Status == ConnectionStatusPending }
func (r *ConnectionRequest) IsAccepted() bool { return r.Status == ConnectionStatusAccepted }
func (r *ConnectionRequest) IsRejected() bool { return r.Status == ConnectionStatusRejected }

// Involves reports whether userID is the sender or the receiver.
func (r *ConnectionRequest) Involves(userID uuid.UUID) bool {
	return r.SenderID == userID || r.ReceiverID == userID
}

// Counterpart returns the other participant relative to userID.
func (r *ConnectionRequest) Counterpart(userID uuid.UUID) uuid.UUID {
	if r.SenderID == userID {
		return r.ReceiverID
	}
	return r.SenderID
}
