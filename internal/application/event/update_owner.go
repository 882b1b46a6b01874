package event

import (
	"context"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

// UpdateAsOwner patches one of the owner's events and optionally runs an
// owner state action. The edit guard applies: only pending or canceled events
// are mutable through this path. Someone else's event reads as not_found.
func (s *Service) UpdateAsOwner(ctx context.Context, ownerID, eventID string,
	patch domain.EventPatch, action OwnerAction) (*domain.Event, error) {

	e, err := s.getOwned(ctx, ownerID, eventID)
	if err != nil {
		return nil, err
	}

	if !e.Editable() {
		return nil, domain.ErrConflict("only pending or canceled events can be changed")
	}

	if action.StateAction != "" {
		if !action.StateAction.Valid() {
			return nil, domain.ErrValidationMeta("invalid state action", map[string]string{
				"state_action": "must be one of: send_to_review, cancel_review",
			})
		}
	}

	if patch.CategoryID != nil {
		ok, err := s.categories.Exists(ctx, *patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrNotFound("category " + *patch.CategoryID + " not found")
		}
	}

	now := s.clock.Now()
	if err := e.Apply(patch, now); err != nil {
		return nil, err
	}

	switch action.StateAction {
	case domain.ActionSendToReview:
		e.SendToReview(now)
	case domain.ActionCancelReview:
		e.CancelReview(now)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.invalidateDetails(ctx, e.ID)
	return e, nil
}

// OwnerAction wraps the optional state action of an owner update request.
type OwnerAction struct {
	StateAction domain.OwnerStateAction // empty means "no state change"
}

func (s *Service) getOwned(ctx context.Context, ownerID, eventID string) (*domain.Event, error) {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + ownerID + " not found")
	}
	e, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.OwnerID != ownerID {
		return nil, domain.ErrNotFound("event " + eventID + " not found")
	}
	return e, nil
}
