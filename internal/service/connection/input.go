package connection

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

const (
	MaxMessageLength         = 500
	MaxResponseMessageLength = 500
)

// SendInput holds the parameters for sending a connection request.
type SendInput struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Message    *string
}

// Validate checks all fields and collects all errors.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.SenderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "sender_id", Message: "required"})
	}
	if i.ReceiverID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "receiver_id", Message: "required"})
	}
	if i.Message != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Message)) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RespondInput holds the receiver's decision on a request.
type RespondInput struct {
	RequestID       uuid.UUID
	ResponderID     uuid.UUID
	Decision        domain.Decision
	ResponseMessage *string
}

// Validate checks all fields and collects all errors.
func (i RespondInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.ResponderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "responder_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACCEPTED or REJECTED"})
	}
	if i.ResponseMessage != nil && utf8.RuneCountInString(strings.TrimSpace(*i.ResponseMessage)) > MaxResponseMessageLength {
		errs = append(errs, domain.FieldError{Field: "response_message", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
