package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinStartLead is the minimum gap between "now" and an event's scheduled
// start, enforced at creation and again on every edit that moves the start.
const MinStartLead = 2 * time.Hour

type Event struct {
	ID         string
	OwnerID    string
	CategoryID string

	Title       string
	Annotation  string
	Description string

	Lat float64
	Lon float64

	Paid              bool
	StartTime         time.Time
	ParticipantLimit  int // 0 = unlimited
	RequestModeration bool

	State       EventState
	PublishedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckStartTime is the timeline guard: scheduled start must be at least
// MinStartLead ahead of now. Violations are conflicts, not validation errors,
// so they surface as 409 like every other state-machine guard.
func CheckStartTime(start, now time.Time) error {
	if start.Before(now.Add(MinStartLead)) {
		return ErrConflict("event must start at least 2 hours from now")
	}
	return nil
}

func NewEvent(ownerID, categoryID, title, annotation, description string, lat, lon float64,
	paid bool, start time.Time, participantLimit int, requestModeration bool, now time.Time) (*Event, error) {

	ownerID = strings.TrimSpace(ownerID)
	categoryID = strings.TrimSpace(categoryID)
	title = strings.TrimSpace(title)
	annotation = strings.TrimSpace(annotation)
	description = strings.TrimSpace(description)

	if ownerID == "" {
		return nil, ErrValidation("owner_id is required")
	}
	if categoryID == "" {
		return nil, ErrValidation("category_id is required")
	}
	if len(title) < 3 || len(title) > 120 {
		return nil, ErrValidation("title must be between 3 and 120 chars")
	}
	if len(annotation) < 20 || len(annotation) > 2000 {
		return nil, ErrValidation("annotation must be between 20 and 2000 chars")
	}
	if len(description) < 20 || len(description) > 7000 {
		return nil, ErrValidation("description must be between 20 and 7000 chars")
	}
	if participantLimit < 0 {
		return nil, ErrValidation("participant_limit must be >= 0 (0 means unlimited)")
	}
	if err := CheckStartTime(start, now); err != nil {
		return nil, err
	}

	return &Event{
		ID:                uuid.NewString(),
		OwnerID:           ownerID,
		CategoryID:        categoryID,
		Title:             title,
		Annotation:        annotation,
		Description:       description,
		Lat:               lat,
		Lon:               lon,
		Paid:              paid,
		StartTime:         start.UTC(),
		ParticipantLimit:  participantLimit,
		RequestModeration: requestModeration,
		State:             StatePending,
		CreatedAt:         now.UTC(),
		UpdatedAt:         now.UTC(),
	}, nil
}

// Editable reports whether the owner-facing edit guard allows mutation.
func (e *Event) Editable() bool {
	return e.State == StatePending || e.State == StateCanceled
}

func (e *Event) Publish(now time.Time) error {
	if e.State != StatePending {
		return ErrConflict("cannot publish the event because it is in the wrong state: " + string(e.State))
	}
	t := now.UTC()
	e.State = StatePublished
	e.PublishedAt = &t
	e.UpdatedAt = t
	return nil
}

func (e *Event) Reject(now time.Time) error {
	if e.State == StatePublished {
		return ErrConflict("cannot reject the event because it is already published")
	}
	e.State = StateCanceled
	e.UpdatedAt = now.UTC()
	return nil
}

func (e *Event) SendToReview(now time.Time) {
	e.State = StatePending
	e.UpdatedAt = now.UTC()
}

func (e *Event) CancelReview(now time.Time) {
	e.State = StateCanceled
	e.UpdatedAt = now.UTC()
}

// EventPatch carries optional field updates; nil means "keep".
type EventPatch struct {
	Title             *string
	Annotation        *string
	Description       *string
	CategoryID        *string
	Lat               *float64
	Lon               *float64
	Paid              *bool
	StartTime         *time.Time
	ParticipantLimit  *int
	RequestModeration *bool
}

// Apply mutates the event with the non-nil patch fields. The timeline guard
// re-runs whenever the patch moves the start; edit-guard and state-action
// decisions stay with the caller (owner path enforces Editable, admin path
// does not).
func (e *Event) Apply(p EventPatch, now time.Time) error {
	if p.StartTime != nil {
		if err := CheckStartTime(*p.StartTime, now); err != nil {
			return err
		}
		e.StartTime = p.StartTime.UTC()
	}
	if p.Title != nil {
		v := strings.TrimSpace(*p.Title)
		if len(v) < 3 || len(v) > 120 {
			return ErrValidation("title must be between 3 and 120 chars")
		}
		e.Title = v
	}
	if p.Annotation != nil {
		v := strings.TrimSpace(*p.Annotation)
		if len(v) < 20 || len(v) > 2000 {
			return ErrValidation("annotation must be between 20 and 2000 chars")
		}
		e.Annotation = v
	}
	if p.Description != nil {
		v := strings.TrimSpace(*p.Description)
		if len(v) < 20 || len(v) > 7000 {
			return ErrValidation("description must be between 20 and 7000 chars")
		}
		e.Description = v
	}
	if p.CategoryID != nil {
		e.CategoryID = strings.TrimSpace(*p.CategoryID)
	}
	if p.Lat != nil {
		e.Lat = *p.Lat
	}
	if p.Lon != nil {
		e.Lon = *p.Lon
	}
	if p.Paid != nil {
		e.Paid = *p.Paid
	}
	if p.ParticipantLimit != nil {
		if *p.ParticipantLimit < 0 {
			return ErrValidation("participant_limit must be >= 0 (0 means unlimited)")
		}
		e.ParticipantLimit = *p.ParticipantLimit
	}
	if p.RequestModeration != nil {
		e.RequestModeration = *p.RequestModeration
	}
	e.UpdatedAt = now.UTC()
	return nil
}
