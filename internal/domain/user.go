package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

func NewUser(name, email string, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || len(name) > 250 {
		return nil, ErrValidation("name is required and must be <= 250 chars")
	}
	if email == "" || len(email) > 254 || !strings.Contains(email, "@") {
		return nil, ErrValidation("email is required and must be a valid address")
	}
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: now.UTC(),
	}, nil
}
