package event

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"
)

// Service owns the event lifecycle and its read paths. Writes go straight to
// the repository; public reads join in view counts from the stats collaborator
// and confirmed counts from the admission engine.
type Service struct {
	repo       EventRepo
	categories CategoryReader
	users      UserReader
	counts     ConfirmedCounter
	stats      StatsClient
	pub        Publisher
	cache      Cache
	clock      Clock

	ttlDetails time.Duration
}

func New(repo EventRepo, categories CategoryReader, users UserReader, counts ConfirmedCounter,
	stats StatsClient, clock Clock, pub Publisher, cache Cache, ttlDetails time.Duration) *Service {

	if pub == nil {
		pub = NoopPublisher{}
	}
	if stats == nil {
		stats = NoopStats{}
	}
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	return &Service{
		repo:       repo,
		categories: categories,
		users:      users,
		counts:     counts,
		stats:      stats,
		pub:        pub,
		cache:      cache,
		clock:      clock,
		ttlDetails: ttlDetails,
	}
}

func (s *Service) invalidateDetails(ctx context.Context, eventID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyEventDetails(eventID)); err != nil {
		zlog.Warn().Err(err).Str("event_id", eventID).Msg("cache invalidate failed")
	}
}
