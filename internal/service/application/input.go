package application

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

const (
	MaxMessageLength         = 1000
	MaxResponseMessageLength = 1000
)

// ApplyInput holds the parameters for applying to an announcement.
type ApplyInput struct {
	ApplicantID    uuid.UUID
	AnnouncementID uuid.UUID
	Message        string
}

// Validate checks all fields and collects all errors.
func (i ApplyInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "applicant_id", Message: "required"})
	}
	if i.AnnouncementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "announcement_id", Message: "required"})
	}

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RespondInput holds the poster's decision on an application.
type RespondInput struct {
	ApplicationID   uuid.UUID
	ResponderID     uuid.UUID
	Decision        domain.Decision
	ResponseMessage *string
}

// Validate checks all fields and collects all errors.
func (i RespondInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if i.ResponderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "responder_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACCEPTED or REJECTED"})
	}
	if i.ResponseMessage != nil && utf8.RuneCountInString(strings.TrimSpace(*i.ResponseMessage)) > MaxResponseMessageLength {
		errs = append(errs, domain.FieldError{Field: "response_message", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
