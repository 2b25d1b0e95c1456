package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the kind of event pushed to a user.
type NotificationType string

const (
	NotificationNewRoommateApplication      NotificationType = "NEW_ROOMMATE_APPLICATION"
	NotificationRoommateApplicationResponse NotificationType = "ROOMMATE_APPLICATION_RESPONSE"
	NotificationRoommateMatchFound          NotificationType = "ROOMMATE_MATCH_FOUND"
	NotificationNewConnectionRequest        NotificationType = "NEW_CONNECTION_REQUEST"
	NotificationConnectionRequestAccepted   NotificationType = "CONNECTION_REQUEST_ACCEPTED"
	NotificationConnectionRequestRejected   NotificationType = "CONNECTION_REQUEST_REJECTED"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationNewRoommateApplication, NotificationRoommateApplicationResponse,
		NotificationRoommateMatchFound, NotificationNewConnectionRequest,
		NotificationConnectionRequestAccepted, NotificationConnectionRequestRejected:
		return true
	}
	return false
}

// NotificationPayload is implemented only by the payload types in this file,
// one per NotificationType.
type NotificationPayload interface {
	NotificationType() NotificationType
	sealedPayload()
}

// Notification is a single event addressed to one user.
type Notification struct {
	Type        NotificationType
	RecipientID uuid.UUID
	Payload     NotificationPayload
	CreatedAt   time.Time
}

// NewNotification builds a Notification whose Type always agrees with the payload.
func NewNotification(recipientID uuid.UUID, payload NotificationPayload, now time.Time) Notification {
	return Notification{
		Type:        payload.NotificationType(),
		RecipientID: recipientID,
		Payload:     payload,
		CreatedAt:   now,
	}
}

// NewRoommateApplicationPayload is sent to the poster when someone applies.
type NewRoommateApplicationPayload struct {
	ApplicationID      uuid.UUID `json:"application_id"`
	AnnouncementID     uuid.UUID `json:"announcement_id"`
	ApplicantID        uuid.UUID `json:"applicant_id"`
	CompatibilityScore float64   `json:"compatibility_score"`
}

// RoommateApplicationResponsePayload is sent to the applicant after the poster decides.
type RoommateApplicationResponsePayload struct {
	ApplicationID   uuid.UUID         `json:"application_id"`
	AnnouncementID  uuid.UUID         `json:"announcement_id"`
	Status          ApplicationStatus `json:"status"`
	ResponseMessage *string           `json:"response_message,omitempty"`
}

// RoommateMatchFoundPayload is sent to a student when a new announcement scores high for them.
type RoommateMatchFoundPayload struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
	PosterID       uuid.UUID `json:"poster_id"`
	Score          float64   `json:"score"`
	Tier           string    `json:"tier"`
}

// NewConnectionRequestPayload is sent to the receiver of a connection request.
type NewConnectionRequestPayload struct {
	RequestID uuid.UUID `json:"request_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Message   *string   `json:"message,omitempty"`
}

// ConnectionRequestAcceptedPayload is sent to the sender once the receiver accepts.
type ConnectionRequestAcceptedPayload struct {
	RequestID       uuid.UUID `json:"request_id"`
	ReceiverID      uuid.UUID `json:"receiver_id"`
	ResponseMessage *string   `json:"response_message,omitempty"`
}

// ConnectionRequestRejectedPayload is sent to the sender once the receiver rejects.
type ConnectionRequestRejectedPayload struct {
	RequestID       uuid.UUID `json:"request_id"`
	ReceiverID      uuid.UUID `json:"receiver_id"`
	ResponseMessage *string   `json:"response_message,omitempty"`
}

func (NewRoommateApplicationPayload) NotificationType() NotificationType {
	return NotificationNewRoommateApplication
}

func (RoommateApplicationResponsePayload) NotificationType() NotificationType {
	return NotificationRoommateApplicationResponse
}

func (RoommateMatchFoundPayload) NotificationType() NotificationType {
	return NotificationRoommateMatchFound
}

func (NewConnectionRequestPayload) NotificationType() NotificationType {
	return NotificationNewConnectionRequest
}

func (ConnectionRequestAcceptedPayload) NotificationType() NotificationType {
	return NotificationConnectionRequestAccepted
}

func (ConnectionRequestRejectedPayload) NotificationType() NotificationType {
	return NotificationConnectionRequestRejected
}

func (NewRoommateApplicationPayload) sealedPayload()      {}
func (RoommateApplicationResponsePayload) sealedPayload() {}
func (RoommateMatchFoundPayload) sealedPayload()          {}
func (NewConnectionRequestPayload) sealedPayload()        {}
func (ConnectionRequestAcceptedPayload) sealedPayload()   {}
func (ConnectionRequestRejectedPayload) sealedPayload()   {}
