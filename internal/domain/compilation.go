package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Compilation is a curated, optionally pinned collection of events.
type Compilation struct {
	ID        string
	Title     string
	Pinned    bool
	EventIDs  []string
	CreatedAt time.Time
}

func NewCompilation(title string, pinned bool, eventIDs []string, now time.Time) (*Compilation, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 50 {
		return nil, ErrValidation("title is required and must be <= 50 chars")
	}
	return &Compilation{
		ID:        uuid.NewString(),
		Title:     title,
		Pinned:    pinned,
		EventIDs:  append([]string(nil), eventIDs...),
		CreatedAt: now.UTC(),
	}, nil
}

type CompilationPatch struct {
	Title    *string
	Pinned   *bool
	EventIDs *[]string
}

func (c *Compilation) Apply(p CompilationPatch) error {
	if p.Title != nil {
		v := strings.TrimSpace(*p.Title)
		if v == "" || len(v) > 50 {
			return ErrValidation("title is required and must be <= 50 chars")
		}
		c.Title = v
	}
	if p.Pinned != nil {
		c.Pinned = *p.Pinned
	}
	if p.EventIDs != nil {
		c.EventIDs = append([]string(nil), (*p.EventIDs)...)
	}
	return nil
}
