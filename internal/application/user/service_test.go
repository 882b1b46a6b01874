package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type memUsers struct {
	byID map[string]*domain.User
	seq  []string
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*domain.User{}} }

func (m *memUsers) Create(ctx context.Context, u *domain.User) error {
	cp := *u
	m.byID[u.ID] = &cp
	m.seq = append(m.seq, u.ID)
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("user " + id + " not found")
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound("user " + email + " not found")
}

func (m *memUsers) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memUsers) List(ctx context.Context, ids []string, from, size int) ([]*domain.User, error) {
	var out []*domain.User
	for _, id := range m.seq {
		u, ok := m.byID[id]
		if !ok {
			continue
		}
		if len(ids) > 0 {
			keep := false
			for _, want := range ids {
				if want == id {
					keep = true
				}
			}
			if !keep {
				continue
			}
		}
		cp := *u
		out = append(out, &cp)
	}
	if from >= len(out) {
		return nil, nil
	}
	end := from + size
	if end > len(out) {
		end = len(out)
	}
	return out[from:end], nil
}

func assertCode(t *testing.T, err error, code domain.ErrCode) {
	t.Helper()
	require.Error(t, err)
	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, code, ae.Code)
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

	newSvc := func() (*Service, *memUsers) {
		repo := newMemUsers()
		return New(repo, fakeClock{t: now}), repo
	}

	t.Run("create_and_list", func(t *testing.T) {
		svc, _ := newSvc()
		u, err := svc.Create(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)

		got, err := svc.List(ctx, nil, 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, u.ID, got[0].ID)
	})

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.Create(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "Other Alice", "alice@example.com")
		assertCode(t, err, domain.CodeConflict)
	})

	t.Run("bad_email_is_validation", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.Create(ctx, "Alice", "not-an-address")
		assertCode(t, err, domain.CodeValidation)
	})

	t.Run("list_narrows_by_ids", func(t *testing.T) {
		svc, _ := newSvc()
		a, err := svc.Create(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "Bob", "bob@example.com")
		require.NoError(t, err)

		got, err := svc.List(ctx, []string{a.ID}, 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
	})

	t.Run("delete_missing_user_not_found", func(t *testing.T) {
		svc, _ := newSvc()
		assertCode(t, svc.Delete(ctx, "ghost"), domain.CodeNotFound)
	})

	t.Run("delete_user", func(t *testing.T) {
		svc, repo := newSvc()
		u, err := svc.Create(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, u.ID))
		_, err = repo.GetByID(ctx, u.ID)
		assertCode(t, err, domain.CodeNotFound)
	})
}
