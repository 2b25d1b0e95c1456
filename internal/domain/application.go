package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoommateApplication is a student's request to join an announcement.
// CompatibilityScore is computed once at creation and never updated.
type RoommateApplication struct {
	ID                 uuid.UUID
	ApplicantID        uuid.UUID
	AnnouncementID     uuid.UUID
	Message            string
	CompatibilityScore float64
	Status             ApplicationStatus
	AppliedAt          time.Time
	RespondedAt        *time.Time
	ResponseMessage    *string
}

func (a *RoommateApplication) IsPending() bool   { return a.Status == ApplicationStatusPending }
func (a *RoommateApplication) IsAccepted() bool  { return a.Status == ApplicationStatusAccepted }
func (a *RoommateApplication) IsRejected() bool  { return a.Status == ApplicationStatusRejected }
func (a *RoommateApplication) IsWithdrawn() bool { return a.Status == ApplicationStatusWithdrawn }
