package event

import (
	"context"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	contracts "github.com/baechuer/cityevents/services/listing-service/internal/contracts/event"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

// AdminAction wraps the optional moderator state action.
type AdminAction struct {
	StateAction domain.AdminStateAction // empty means "no state change"
}

// UpdateAsAdmin patches any event on behalf of a moderator and optionally
// publishes or rejects it. The moderator path skips the owner edit guard, but
// the publish and reject state guards and the timeline guard still apply.
func (s *Service) UpdateAsAdmin(ctx context.Context, eventID string,
	patch domain.EventPatch, action AdminAction) (*domain.Event, error) {

	e, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if action.StateAction != "" && !action.StateAction.Valid() {
		return nil, domain.ErrValidationMeta("invalid state action", map[string]string{
			"state_action": "must be one of: publish_event, reject_event",
		})
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
	case domain.ActionPublish:
		if err := e.Publish(now); err != nil {
			return nil, err
		}
	case domain.ActionReject:
		if err := e.Reject(now); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.invalidateDetails(ctx, e.ID)

	switch action.StateAction {
	case domain.ActionPublish:
		s.publishLifecycle(ctx, "event.published", contracts.EventPublishedPayload{
			EventID:           e.ID,
			OwnerID:           e.OwnerID,
			Title:             e.Title,
			CategoryID:        e.CategoryID,
			StartTime:         e.StartTime,
			ParticipantLimit:  e.ParticipantLimit,
			RequestModeration: e.RequestModeration,
			State:             string(e.State),
		})
	case domain.ActionReject:
		s.publishLifecycle(ctx, "event.canceled", contracts.EventCanceledPayload{
			EventID: e.ID,
			OwnerID: e.OwnerID,
			State:   string(e.State),
			Reason:  "rejected by moderation",
		})
	}

	return e, nil
}

func (s *Service) publishLifecycle(ctx context.Context, routingKey string, payload any) {
	env := contracts.DomainEventEnvelope[any]{
		Version:    contracts.Version,
		Producer:   contracts.Producer,
		MessageID:  uuid.NewString(),
		OccurredAt: s.clock.Now().UTC(),
		Payload:    payload,
	}
	if err := s.pub.PublishEvent(ctx, routingKey, env); err != nil {
		zlog.Error().Err(err).Str("rk", routingKey).Msg("publish domain event failed")
	}
}
