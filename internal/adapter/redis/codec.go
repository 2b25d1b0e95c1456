package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

// envelope is the wire form of a notification on the pub/sub channel and
// on the WebSocket.
type envelope struct {
	Type        domain.NotificationType `json:"type"`
	RecipientID uuid.UUID               `json:"recipient_id"`
	CreatedAt   time.Time               `json:"created_at"`
	Payload     json.RawMessage         `json:"payload"`
}

// Encode serializes n.
func Encode(n domain.Notification) ([]byte, error) {
	if n.Payload == nil {
		return nil, fmt.Errorf("encode notification: nil payload")
	}
	if n.Payload.NotificationType() != n.Type {
		return nil, fmt.Errorf("encode notification: type %s does not match payload %s", n.Type, n.Payload.NotificationType())
	}

	raw, err := json.Marshal(n.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode notification payload: %w", err)
	}

	return json.Marshal(envelope{
		Type:        n.Type,
		RecipientID: n.RecipientID,
		CreatedAt:   n.CreatedAt,
		Payload:     raw,
	})
}

// Decode parses data produced by Encode. Unknown types are rejected.
func Decode(data []byte) (domain.Notification, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Notification{}, fmt.Errorf("decode notification: %w", err)
	}

	payload, err := decodePayload(env.Type, env.Payload)
	if err != nil {
		return domain.Notification{}, err
	}

	return domain.Notification{
		Type:        env.Type,
		RecipientID: env.RecipientID,
		Payload:     payload,
		CreatedAt:   env.CreatedAt,
	}, nil
}

func decodePayload(t domain.NotificationType, raw json.RawMessage) (domain.NotificationPayload, error) {
	switch t {
	case domain.NotificationNewRoommateApplication:
		return unmarshalPayload[domain.NewRoommateApplicationPayload](t, raw)
	case domain.NotificationRoommateApplicationResponse:
		return unmarshalPayload[domain.RoommateApplicationResponsePayload](t, raw)
	case domain.NotificationRoommateMatchFound:
		return unmarshalPayload[domain.RoommateMatchFoundPayload](t, raw)
	case domain.NotificationNewConnectionRequest:
		return unmarshalPayload[domain.NewConnectionRequestPayload](t, raw)
	case domain.NotificationConnectionRequestAccepted:
		return unmarshalPayload[domain.ConnectionRequestAcceptedPayload](t, raw)
	case domain.NotificationConnectionRequestRejected:
		return unmarshalPayload[domain.ConnectionRequestRejectedPayload](t, raw)
	default:
		return nil, fmt.Errorf("decode notification: unknown type %q", t)
	}
}

func unmarshalPayload[P domain.NotificationPayload](t domain.NotificationType, raw json.RawMessage) (domain.NotificationPayload, error) {
	var p P
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}
	return p, nil
}
