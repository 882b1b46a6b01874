package admission

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/cityevents/services/listing-service/internal/pkg/eventlock"
)

// Service is the participation admission engine: it runs the request state
// machine and keeps the confirmed count of every event at or under its
// participant limit.
type Service struct {
	requests RequestRepo
	events   EventReader
	users    UserReader
	clock    Clock

	pub   Publisher
	cache Cache

	// Serializes capacity-sensitive work (create / batch moderation) per
	// event for the whole read-decide-write sequence.
	locks *eventlock.Keyed
}

func New(requests RequestRepo, events EventReader, users UserReader, clock Clock, pub Publisher, cache Cache) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{
		requests: requests,
		events:   events,
		users:    users,
		clock:    clock,
		pub:      pub,
		cache:    cache,
		locks:    eventlock.New(),
	}
}

func cacheKeyConfirmedCount(eventID string) string {
	return "event:" + eventID + ":confirmed"
}

// invalidateConfirmedCount drops the cached count after a write that changes
// it. Best-effort: a stale cache only affects read-path reporting, never
// admission decisions.
func (s *Service) invalidateConfirmedCount(ctx context.Context, eventID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyConfirmedCount(eventID)); err != nil {
		zlog.Warn().Err(err).Str("event_id", eventID).Msg("cache invalidate failed")
	}
}
