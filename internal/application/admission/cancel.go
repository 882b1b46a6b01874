package admission

import (
	"context"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

// Cancel withdraws the requester's own request. A request owned by someone
// else reads as not_found, never as forbidden, so request ids stay opaque
// across users. Withdrawal carries no terminal-state guard: canceling an
// already-canceled request is an observational no-op.
func (s *Service) Cancel(ctx context.Context, requesterID, requestID string) (*domain.ParticipationRequest, error) {
	ok, err := s.users.Exists(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + requesterID + " not found")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != requesterID {
		return nil, domain.ErrNotFound("participation request " + requestID + " not found")
	}

	wasConfirmed := req.Status == domain.RequestConfirmed
	req.Cancel()
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	if wasConfirmed {
		s.invalidateConfirmedCount(ctx, req.EventID)
	}
	return req, nil
}
