package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is a user note attached to a published event.
type Comment struct {
	ID        string
	EventID   string
	AuthorID  string
	Text      string
	CreatedAt time.Time
}

func NewComment(eventID, authorID, text string, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > 4000 {
		return nil, ErrValidation("comment text is required and must be <= 4000 chars")
	}
	return &Comment{
		ID:        uuid.NewString(),
		EventID:   eventID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: now.UTC(),
	}, nil
}
