package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestConfirmed RequestStatus = "confirmed"
	RequestCanceled  RequestStatus = "canceled" // withdrawn by the requester
	RequestRejected  RequestStatus = "rejected" // denied by moderation or capacity
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestConfirmed, RequestCanceled, RequestRejected:
		return true
	}
	return false
}

// ParticipationRequest is one user's bid to attend one event.
type ParticipationRequest struct {
	ID          string
	EventID     string
	RequesterID string
	Status      RequestStatus
	CreatedAt   time.Time
}

// InitialRequestStatus decides the status a fresh request lands in.
// Auto-confirm happens only when moderation is off AND the event carries a
// nonzero limit. An unlimited event with moderation off still yields pending;
// that asymmetry is deliberate and load-bearing (callers test against it), so
// leave it alone without a coordinated behavior change.
func InitialRequestStatus(requestModeration bool, participantLimit int) RequestStatus {
	if !requestModeration && participantLimit > 0 {
		return RequestConfirmed
	}
	return RequestPending
}

func NewParticipationRequest(eventID, requesterID string, status RequestStatus, now time.Time) *ParticipationRequest {
	return &ParticipationRequest{
		ID:          uuid.NewString(),
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      status,
		CreatedAt:   now.UTC(),
	}
}

// Cancel withdraws the request. There is intentionally no terminal-state
// guard: canceling an already-canceled or confirmed request just lands it in
// canceled again.
func (r *ParticipationRequest) Cancel() {
	r.Status = RequestCanceled
}
