package event

import (
	"context"
	"time"
)

type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(ctx context.Context, routingKey string, payload any) error {
	return nil
}

// NoopStats stands in when no stats collaborator is configured: hits vanish,
// every uri reads as zero views.
type NoopStats struct{}

func (NoopStats) Hit(ctx context.Context, app, uri, ip string, ts time.Time) error { return nil }

func (NoopStats) Views(ctx context.Context, uris []string) (map[string]int64, error) {
	return map[string]int64{}, nil
}
