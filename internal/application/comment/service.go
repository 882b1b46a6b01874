package comment

import (
	"context"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByEvent(ctx context.Context, eventID string, from, size int) ([]*domain.Comment, error)
}

type EventReader interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

type UserReader interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service owns per-event comments. Comments attach to published events
// only; an unpublished event reads as missing, the same masking the
// event read path applies.
type Service struct {
	repo   CommentRepo
	events EventReader
	users  UserReader
	clock  Clock
}

func New(repo CommentRepo, events EventReader, users UserReader, clock Clock) *Service {
	return &Service{repo: repo, events: events, users: users, clock: clock}
}

func (s *Service) Create(ctx context.Context, authorID, eventID, text string) (*domain.Comment, error) {
	ok, err := s.users.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + authorID + " not found")
	}
	if err := s.checkPublished(ctx, eventID); err != nil {
		return nil, err
	}
	c, err := domain.NewComment(eventID, authorID, text, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListForEvent(ctx context.Context, eventID string, from, size int) ([]*domain.Comment, error) {
	if err := s.checkPublished(ctx, eventID); err != nil {
		return nil, err
	}
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = 10
	}
	return s.repo.ListByEvent(ctx, eventID, from, size)
}

func (s *Service) checkPublished(ctx context.Context, eventID string) error {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if e.State != domain.StatePublished {
		return domain.ErrNotFound("event " + eventID + " not found")
	}
	return nil
}
