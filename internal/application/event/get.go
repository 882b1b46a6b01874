package event

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

// GetPublic serves the public event page: published events only, anything
// else reads as not_found. Every successful read emits a hit to the stats
// collaborator and joins the view count back in.
func (s *Service) GetPublic(ctx context.Context, id, clientIP string) (*View, error) {
	key := cacheKeyEventDetails(id)
	var e *domain.Event

	if s.cache != nil {
		var cached domain.Event
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			e = &cached
		}
	}

	if e == nil {
		got, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if got.State != domain.StatePublished {
			return nil, domain.ErrNotFound("event " + id + " not found")
		}
		e = got

		if s.cache != nil {
			if err := s.cache.Set(ctx, key, e, s.ttlDetails); err != nil {
				zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
			}
		}
	}

	s.emitHit(EventURI(e.ID), clientIP)

	views, err := s.withStats(ctx, []*domain.Event{e})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// GetForOwner serves the owner's full view of their own event, any state. No
// caching; the owner needs to see their edits immediately.
func (s *Service) GetForOwner(ctx context.Context, ownerID, eventID string) (*View, error) {
	e, err := s.getOwned(ctx, ownerID, eventID)
	if err != nil {
		return nil, err
	}
	views, err := s.withStats(ctx, []*domain.Event{e})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}
