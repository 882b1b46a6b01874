package category

import (
	"context"
	"errors"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, from, size int) ([]*domain.Category, error)
}

// EventExistence answers whether any event still references a category.
type EventExistence interface {
	AnyInCategory(ctx context.Context, categoryID string) (bool, error)
}

type Service struct {
	repo   CategoryRepo
	events EventExistence
	clock  Clock
}

func New(repo CategoryRepo, events EventExistence, clock Clock) *Service {
	return &Service{repo: repo, events: events, clock: clock}
}

// Create registers a category. Names are unique; a taken name conflicts.
func (s *Service) Create(ctx context.Context, name string) (*domain.Category, error) {
	c, err := domain.NewCategory(name, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, c.Name, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, from, size int) ([]*domain.Category, error) {
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = 10
	}
	return s.repo.List(ctx, from, size)
}

// Rename changes a category's name, keeping the uniqueness rule. Renaming a
// category to its own current name is a no-op, not a conflict.
func (s *Service) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, c.Name, c.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category unless an event still references it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	inUse, err := s.events.AnyInCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrConflict("the category is not empty")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		var ae *domain.AppError
		if errors.As(err, &ae) && ae.Code == domain.CodeNotFound {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrConflict("category name " + name + " is already taken")
	}
	return nil
}
