package event

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/metrics"
)

// View is the read model: the event plus the counters read paths join in.
type View struct {
	*domain.Event
	Views          int64
	ConfirmedCount int
}

// EventURI is the path the stats collaborator keys view counts by.
func EventURI(id string) string {
	return "/events/" + id
}

// withStats joins views and confirmed counts onto a slice of events. Stats
// failures degrade to zero views; a confirmed-count failure propagates since
// it comes from our own store.
func (s *Service) withStats(ctx context.Context, events []*domain.Event) ([]*View, error) {
	uris := make([]string, 0, len(events))
	for _, e := range events {
		uris = append(uris, EventURI(e.ID))
	}

	views := map[string]int64{}
	if len(uris) > 0 {
		got, err := s.stats.Views(ctx, uris)
		if err != nil {
			zlog.Warn().Err(err).Int("uris", len(uris)).Msg("stats views lookup failed")
		} else {
			views = got
		}
	}

	out := make([]*View, 0, len(events))
	for _, e := range events {
		confirmed, err := s.confirmedCount(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &View{
			Event:          e,
			Views:          views[EventURI(e.ID)],
			ConfirmedCount: confirmed,
		})
	}
	return out, nil
}

// confirmedCount reads the cached count when available, falling back to the
// admission engine. The cache is only a read-path shortcut; admission
// decisions never consult it.
func (s *Service) confirmedCount(ctx context.Context, eventID string) (int, error) {
	key := cacheKeyConfirmedCount(eventID)
	if s.cache != nil {
		var cached int
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			return cached, nil
		}
	}

	n, err := s.counts.ConfirmedCount(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, n, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return n, nil
}

// emitHit records one public read with the stats collaborator,
// fire-and-forget.
func (s *Service) emitHit(uri, ip string) {
	ts := s.clock.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.stats.Hit(ctx, "listing-service", uri, ip, ts); err != nil {
			metrics.RecordStatsHit("error")
			zlog.Warn().Err(err).Str("uri", uri).Msg("stats hit emit failed")
			return
		}
		metrics.RecordStatsHit("ok")
	}()
}
