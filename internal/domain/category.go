package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func NewCategory(name string, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return nil, ErrValidation("name is required and must be <= 50 chars")
	}
	return &Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now.UTC(),
	}, nil
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return ErrValidation("name is required and must be <= 50 chars")
	}
	c.Name = name
	return nil
}
