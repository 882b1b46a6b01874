package admission

import (
	"context"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/metrics"
)

// Create applies requesterID to eventID.
//
// Guards, in order: requester and event must exist (not_found); the requester
// must not be the event owner (conflict); the event must be published
// (conflict); a nonzero participant limit must have room (conflict). The
// initial status comes from domain.InitialRequestStatus.
//
// Nothing deduplicates repeat applications from the same user; the capacity
// count is the only thing bounding confirmed slots.
func (s *Service) Create(ctx context.Context, requesterID, eventID string) (*domain.ParticipationRequest, error) {
	ok, err := s.users.Exists(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + requesterID + " not found")
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.OwnerID == requesterID {
		metrics.RecordAdmissionConflict("own_event")
		return nil, domain.ErrConflict("the event initiator cannot apply to participate in his own event")
	}
	if ev.State != domain.StatePublished {
		metrics.RecordAdmissionConflict("not_published")
		return nil, domain.ErrConflict("unable to participate in an unpublished event")
	}

	// capacity check and insert under the event's lock
	s.locks.Lock(ev.ID)
	defer s.locks.Unlock(ev.ID)

	if ev.ParticipantLimit > 0 {
		confirmed, err := s.requests.CountConfirmed(ctx, ev.ID)
		if err != nil {
			return nil, err
		}
		if confirmed >= ev.ParticipantLimit {
			metrics.RecordAdmissionConflict("limit_reached")
			return nil, domain.ErrConflict("the number of requests for participation has exceeded the limit")
		}
	}

	status := domain.InitialRequestStatus(ev.RequestModeration, ev.ParticipantLimit)
	req := domain.NewParticipationRequest(ev.ID, requesterID, status, s.clock.Now())
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	if status == domain.RequestConfirmed {
		metrics.RecordRequestDecided(string(domain.RequestConfirmed), 1)
		s.invalidateConfirmedCount(ctx, ev.ID)
		s.publishDecided(ctx, ev.ID, []string{req.ID}, nil)
	}
	return req, nil
}
