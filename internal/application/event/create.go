package event

import (
	"context"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

// CreateInput carries a fully-defaulted new event; the transport layer fills
// in participant_limit=0, request_moderation=true and paid=false when the
// request body omits them.
type CreateInput struct {
	CategoryID  string
	Title       string
	Annotation  string
	Description string

	Lat float64
	Lon float64

	Paid              bool
	StartTime         time.Time
	ParticipantLimit  int
	RequestModeration bool
}

// Create registers a new event for ownerID in the pending state.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.Event, error) {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + ownerID + " not found")
	}

	ok, err = s.categories.Exists(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("category " + in.CategoryID + " not found")
	}

	e, err := domain.NewEvent(ownerID, in.CategoryID, in.Title, in.Annotation, in.Description,
		in.Lat, in.Lon, in.Paid, in.StartTime, in.ParticipantLimit, in.RequestModeration, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
