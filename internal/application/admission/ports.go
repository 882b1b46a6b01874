package admission

import (
	"context"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// RequestRepo owns ParticipationRequest persistence. UpdateAll must persist
// the whole batch as one unit or not at all.
type RequestRepo interface {
	Create(ctx context.Context, r *domain.ParticipationRequest) error
	GetByID(ctx context.Context, id string) (*domain.ParticipationRequest, error)
	GetManyByID(ctx context.Context, ids []string) ([]*domain.ParticipationRequest, error)
	Update(ctx context.Context, r *domain.ParticipationRequest) error
	UpdateAll(ctx context.Context, rs []*domain.ParticipationRequest) error

	ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error)

	CountConfirmed(ctx context.Context, eventID string) (int, error)
}

// EventReader is the slice of the event store the engine borrows records from.
type EventReader interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

type UserReader interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}

// Cache invalidation only; the engine never trusts cached counts for
// admission decisions.
type Cache interface {
	Delete(ctx context.Context, keys ...string) error
}
