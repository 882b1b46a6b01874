package event

import (
	"context"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error

	ListPublic(ctx context.Context, f PublicFilter) ([]*domain.Event, error)
	ListByOwner(ctx context.Context, ownerID string, from, size int) ([]*domain.Event, error)
	ListAdmin(ctx context.Context, f AdminFilter) ([]*domain.Event, error)
}

type CategoryReader interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type UserReader interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ConfirmedCounter is the admission engine's read surface: the live number of
// confirmed participants per event.
type ConfirmedCounter interface {
	ConfirmedCount(ctx context.Context, eventID string) (int, error)
}

// StatsClient talks to the hit-counting collaborator. Both calls are
// best-effort: Hit failures are logged and dropped, Views failures read as
// zero views.
type StatsClient interface {
	Hit(ctx context.Context, app, uri, ip string, ts time.Time) error
	Views(ctx context.Context, uris []string) (map[string]int64, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
