package user

import (
	"context"
	"errors"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ids []string, from, size int) ([]*domain.User, error)
}

// Service is the admin user registry. There is no authentication here: the
// service identifies callers by path parameter and this registry only backs
// existence checks and admin listings.
type Service struct {
	repo  UserRepo
	clock Clock
}

func New(repo UserRepo, clock Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// Create registers a user. Emails are unique; a taken email conflicts.
func (s *Service) Create(ctx context.Context, name, email string) (*domain.User, error) {
	u, err := domain.NewUser(name, email, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByEmail(ctx, u.Email); err == nil {
		return nil, domain.ErrConflict("email " + u.Email + " is already taken")
	} else {
		var ae *domain.AppError
		if !errors.As(err, &ae) || ae.Code != domain.CodeNotFound {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List pages users; a non-empty ids slice narrows the listing to those ids.
func (s *Service) List(ctx context.Context, ids []string, from, size int) ([]*domain.User, error) {
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = 10
	}
	return s.repo.List(ctx, ids, from, size)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
