package event

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

const (
	SortEventDate = "event_date"
	SortViews     = "views"
)

// PublicFilter filters the public listing. From/Size page the result,
// offset style.
type PublicFilter struct {
	Text          string // matched against annotation and description
	CategoryIDs   []string
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool

	Sort string // event_date | views
	From int
	Size int
}

func (f *PublicFilter) Normalize(now time.Time) error {
	f.Text = strings.TrimSpace(f.Text)
	f.Sort = strings.TrimSpace(f.Sort)

	if f.From < 0 {
		f.From = 0
	}
	if f.Size <= 0 {
		f.Size = 10
	}
	if f.Size > 100 {
		f.Size = 100
	}

	if f.Sort == "" {
		f.Sort = SortEventDate
	}
	if f.Sort != SortEventDate && f.Sort != SortViews {
		return domain.ErrValidationMeta("invalid query param", map[string]string{
			"sort": "must be one of: event_date, views",
		})
	}
	if f.RangeStart != nil && f.RangeEnd != nil && f.RangeEnd.Before(*f.RangeStart) {
		return domain.ErrValidation("range_end must be >= range_start")
	}
	// no range given: only events that have not started yet
	if f.RangeStart == nil && f.RangeEnd == nil {
		t := now.UTC()
		f.RangeStart = &t
	}
	return nil
}

// ListPublic serves the public listing. The repository filters and pages by
// event date; views ordering and the onlyAvailable cut are applied to the
// fetched page after the counters are joined in. Each call emits one hit for
// the listing uri.
func (s *Service) ListPublic(ctx context.Context, f PublicFilter, clientIP string) ([]*View, error) {
	if err := f.Normalize(s.clock.Now()); err != nil {
		return nil, err
	}

	events, err := s.repo.ListPublic(ctx, f)
	if err != nil {
		return nil, err
	}

	s.emitHit("/events", clientIP)

	views, err := s.withStats(ctx, events)
	if err != nil {
		return nil, err
	}

	if f.OnlyAvailable {
		kept := views[:0]
		for _, v := range views {
			if v.ParticipantLimit == 0 || v.ConfirmedCount < v.ParticipantLimit {
				kept = append(kept, v)
			}
		}
		views = kept
	}

	if f.Sort == SortViews {
		sort.SliceStable(views, func(i, j int) bool { return views[i].Views > views[j].Views })
	}
	return views, nil
}

// ListOwn pages the owner's events, any state.
func (s *Service) ListOwn(ctx context.Context, ownerID string, from, size int) ([]*View, error) {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("user " + ownerID + " not found")
	}
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = 10
	}
	events, err := s.repo.ListByOwner(ctx, ownerID, from, size)
	if err != nil {
		return nil, err
	}
	return s.withStats(ctx, events)
}

// AdminFilter filters the moderation listing. Empty slices mean "any".
type AdminFilter struct {
	UserIDs     []string
	States      []domain.EventState
	CategoryIDs []string
	RangeStart  *time.Time
	RangeEnd    *time.Time

	From int
	Size int
}

func (f *AdminFilter) Normalize() error {
	if f.From < 0 {
		f.From = 0
	}
	if f.Size <= 0 {
		f.Size = 10
	}
	if f.Size > 100 {
		f.Size = 100
	}
	for _, st := range f.States {
		if !st.Valid() {
			return domain.ErrValidationMeta("invalid query param", map[string]string{
				"states": "must be one of: pending, published, canceled",
			})
		}
	}
	if f.RangeStart != nil && f.RangeEnd != nil && f.RangeEnd.Before(*f.RangeStart) {
		return domain.ErrValidation("range_end must be >= range_start")
	}
	return nil
}

// ListAdmin serves the moderation listing, any state, no hit emission.
func (s *Service) ListAdmin(ctx context.Context, f AdminFilter) ([]*View, error) {
	if err := f.Normalize(); err != nil {
		return nil, err
	}
	events, err := s.repo.ListAdmin(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.withStats(ctx, events)
}
