package event

import "time"

const (
	Version  = 1
	Producer = "listing-service"
)

// DomainEventEnvelope is the stable contract for domain events emitted by
// listing-service. Consumers should rely on version/producer/message_id/
// occurred_at + payload; trace_id is optional.
type DomainEventEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id,omitempty"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// EventPublishedPayload rides routing key: event.published
type EventPublishedPayload struct {
	EventID           string    `json:"event_id"`
	OwnerID           string    `json:"owner_id"`
	Title             string    `json:"title"`
	CategoryID        string    `json:"category_id"`
	StartTime         time.Time `json:"start_time"`
	ParticipantLimit  int       `json:"participant_limit"`
	RequestModeration bool      `json:"request_moderation"`
	State             string    `json:"state"`
}

// EventCanceledPayload rides routing key: event.canceled
type EventCanceledPayload struct {
	EventID string `json:"event_id"`
	OwnerID string `json:"owner_id"`
	State   string `json:"state"`
	Reason  string `json:"reason,omitempty"`
}

// RequestsDecidedPayload rides routing key: request.decided, emitted after a
// moderation batch or an auto-confirmed create.
type RequestsDecidedPayload struct {
	EventID      string   `json:"event_id"`
	ConfirmedIDs []string `json:"confirmed_ids,omitempty"`
	RejectedIDs  []string `json:"rejected_ids,omitempty"`
}
