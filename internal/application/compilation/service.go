package compilation

import (
	"context"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type CompilationRepo interface {
	Create(ctx context.Context, c *domain.Compilation) error
	GetByID(ctx context.Context, id string) (*domain.Compilation, error)
	Update(ctx context.Context, c *domain.Compilation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, pinned *bool, from, size int) ([]*domain.Compilation, error)
}

type EventReader interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetMany(ctx context.Context, ids []string) ([]*domain.Event, error)
}

// Detail is a compilation with its member events loaded.
type Detail struct {
	*domain.Compilation
	Events []*domain.Event
}

// Service owns curated event compilations. Events in a compilation may be in
// any state; only the ids are validated.
type Service struct {
	repo   CompilationRepo
	events EventReader
	clock  Clock
}

func New(repo CompilationRepo, events EventReader, clock Clock) *Service {
	return &Service{repo: repo, events: events, clock: clock}
}

func (s *Service) Create(ctx context.Context, title string, pinned bool, eventIDs []string) (*Detail, error) {
	if err := s.checkEvents(ctx, eventIDs); err != nil {
		return nil, err
	}
	c, err := domain.NewCompilation(title, pinned, eventIDs, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.hydrate(ctx, c)
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, c)
}

func (s *Service) List(ctx context.Context, pinned *bool, from, size int) ([]*Detail, error) {
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = 10
	}
	cs, err := s.repo.List(ctx, pinned, from, size)
	if err != nil {
		return nil, err
	}
	out := make([]*Detail, 0, len(cs))
	for _, c := range cs {
		d, err := s.hydrate(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, patch domain.CompilationPatch) (*Detail, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.EventIDs != nil {
		if err := s.checkEvents(ctx, *patch.EventIDs); err != nil {
			return nil, err
		}
	}
	if err := c.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.hydrate(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) hydrate(ctx context.Context, c *domain.Compilation) (*Detail, error) {
	if len(c.EventIDs) == 0 {
		return &Detail{Compilation: c}, nil
	}
	events, err := s.events.GetMany(ctx, c.EventIDs)
	if err != nil {
		return nil, err
	}
	return &Detail{Compilation: c, Events: events}, nil
}

func (s *Service) checkEvents(ctx context.Context, ids []string) error {
	for _, id := range ids {
		ok, err := s.events.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound("event " + id + " not found")
		}
	}
	return nil
}
