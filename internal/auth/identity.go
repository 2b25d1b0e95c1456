package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

// Identity is the caller as asserted by a verified access token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}
