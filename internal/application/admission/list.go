package admission

import (
	"context"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

// ListOwn returns every request the user has made, any status.
func (s *Service) ListOwn(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	ok, err := s.users.Exists(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + requesterID + " not found")
	}
	return s.requests.ListByRequester(ctx, requesterID)
}

// ListForEvent returns all requests targeting one of the owner's events.
func (s *Service) ListForEvent(ctx context.Context, ownerID, eventID string) ([]*domain.ParticipationRequest, error) {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + ownerID + " not found")
	}
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.OwnerID != ownerID {
		return nil, domain.ErrNotFound("event " + eventID + " not found")
	}
	return s.requests.ListByEvent(ctx, eventID)
}

// ConfirmedCount reports the live confirmed count for an event; read paths
// join it onto event payloads.
func (s *Service) ConfirmedCount(ctx context.Context, eventID string) (int, error) {
	return s.requests.CountConfirmed(ctx, eventID)
}
