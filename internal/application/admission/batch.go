package admission

import (
	"context"
	"strings"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	contracts "github.com/baechuer/cityevents/services/listing-service/internal/contracts/event"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/metrics"
)

// BatchResult partitions exactly the processed requests, in the order they
// were supplied.
type BatchResult struct {
	Confirmed []*domain.ParticipationRequest
	Rejected  []*domain.ParticipationRequest
}

// BatchUpdate moves a set of requests to targetStatus on behalf of the event
// owner, never letting the confirmed count pass the participant limit.
//
// The policy is greedy and order-sensitive: requests are processed in the
// caller-supplied order, each CONFIRMED consumes one slot of
// limit-confirmedCount, and once slots run out every remaining request is
// forced to REJECTED whatever the caller asked for. Missing ids, or ids
// belonging to another event, fail the whole batch with not_found before
// anything persists.
func (s *Service) BatchUpdate(ctx context.Context, ownerID, eventID string, requestIDs []string, targetStatus domain.RequestStatus) (*BatchResult, error) {
	if targetStatus != domain.RequestConfirmed && targetStatus != domain.RequestRejected {
		return nil, domain.ErrValidationMeta("invalid target status", map[string]string{
			"status": "must be one of: confirmed, rejected",
		})
	}

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

	s.locks.Lock(ev.ID)
	defer s.locks.Unlock(ev.ID)

	confirmed, err := s.requests.CountConfirmed(ctx, ev.ID)
	if err != nil {
		return nil, err
	}
	// With limit 0 (unlimited) this is always <= 0; batch moderation of
	// unlimited events conflicts before the id list is even looked at.
	confirmLimit := ev.ParticipantLimit - confirmed
	if confirmLimit <= 0 {
		metrics.RecordAdmissionConflict("limit_reached")
		return nil, domain.ErrConflict("the number of requests for participation has exceeded the limit")
	}

	reqs, err := s.requests.GetManyByID(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.ParticipationRequest, len(reqs))
	for _, r := range reqs {
		byID[r.ID] = r
	}

	var missing []string
	for _, id := range requestIDs {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.ErrNotFoundMeta("participation requests not found", map[string]string{
			"request_ids": strings.Join(missing, ","),
		})
	}

	res := &BatchResult{}
	touched := make([]*domain.ParticipationRequest, 0, len(requestIDs))
	for _, id := range requestIDs {
		req := byID[id]
		if req.EventID != ev.ID {
			return nil, domain.ErrNotFound("participation request " + req.ID + " not found")
		}

		if confirmLimit <= 0 {
			// slots exhausted mid-batch: forced rejection
			req.Status = domain.RequestRejected
			res.Rejected = append(res.Rejected, req)
			touched = append(touched, req)
			continue
		}

		req.Status = targetStatus
		if targetStatus == domain.RequestConfirmed {
			res.Confirmed = append(res.Confirmed, req)
			confirmLimit--
		} else {
			res.Rejected = append(res.Rejected, req)
		}
		touched = append(touched, req)
	}

	if err := s.requests.UpdateAll(ctx, touched); err != nil {
		return nil, err
	}

	metrics.RecordRequestDecided(string(domain.RequestConfirmed), len(res.Confirmed))
	metrics.RecordRequestDecided(string(domain.RequestRejected), len(res.Rejected))
	if len(res.Confirmed) > 0 {
		s.invalidateConfirmedCount(ctx, ev.ID)
	}
	s.publishDecided(ctx, ev.ID, ids(res.Confirmed), ids(res.Rejected))

	return res, nil
}

func ids(rs []*domain.ParticipationRequest) []string {
	if len(rs) == 0 {
		return nil
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func (s *Service) publishDecided(ctx context.Context, eventID string, confirmedIDs, rejectedIDs []string) {
	env := contracts.DomainEventEnvelope[contracts.RequestsDecidedPayload]{
		Version:    contracts.Version,
		Producer:   contracts.Producer,
		MessageID:  uuid.NewString(),
		OccurredAt: s.clock.Now().UTC(),
		Payload: contracts.RequestsDecidedPayload{
			EventID:      eventID,
			ConfirmedIDs: confirmedIDs,
			RejectedIDs:  rejectedIDs,
		},
	}
	if err := s.pub.PublishEvent(ctx, "request.decided", env); err != nil {
		zlog.Error().Err(err).Str("rk", "request.decided").Str("event_id", eventID).Msg("publish domain event failed")
	}
}
