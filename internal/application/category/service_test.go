package category

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

type memCategories struct {
	byID map[string]*domain.Category
	seq  []string
}

func newMemCategories() *memCategories {
	return &memCategories{byID: map[string]*domain.Category{}}
}

func (m *memCategories) Create(ctx context.Context, c *domain.Category) error {
	cp := *c
	m.byID[c.ID] = &cp
	m.seq = append(m.seq, c.ID)
	return nil
}

func (m *memCategories) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("category " + id + " not found")
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, c := range m.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound("category " + name + " not found")
}

func (m *memCategories) Update(ctx context.Context, c *domain.Category) error {
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCategories) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memCategories) List(ctx context.Context, from, size int) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, id := range m.seq {
		if c, ok := m.byID[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
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

type fixedUsage map[string]bool

func (u fixedUsage) AnyInCategory(ctx context.Context, categoryID string) (bool, error) {
	return u[categoryID], nil
}

func assertCode(t *testing.T, err error, code domain.ErrCode) {
	t.Helper()
	require.Error(t, err)
	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, code, ae.Code)
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

	newSvc := func() (*Service, *memCategories, fixedUsage) {
		repo := newMemCategories()
		usage := fixedUsage{}
		return New(repo, usage, fakeClock{t: now}), repo, usage
	}

	t.Run("create_and_get", func(t *testing.T) {
		svc, _, _ := newSvc()
		c, err := svc.Create(ctx, "concerts")
		require.NoError(t, err)
		got, err := svc.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "concerts", got.Name)
	})

	t.Run("duplicate_name_conflicts", func(t *testing.T) {
		svc, _, _ := newSvc()
		_, err := svc.Create(ctx, "concerts")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "concerts")
		assertCode(t, err, domain.CodeConflict)
	})

	t.Run("rename_to_taken_name_conflicts", func(t *testing.T) {
		svc, _, _ := newSvc()
		_, err := svc.Create(ctx, "concerts")
		require.NoError(t, err)
		c, err := svc.Create(ctx, "sports")
		require.NoError(t, err)

		_, err = svc.Rename(ctx, c.ID, "concerts")
		assertCode(t, err, domain.CodeConflict)
	})

	t.Run("rename_to_own_name_is_noop", func(t *testing.T) {
		svc, _, _ := newSvc()
		c, err := svc.Create(ctx, "concerts")
		require.NoError(t, err)
		got, err := svc.Rename(ctx, c.ID, "concerts")
		require.NoError(t, err)
		assert.Equal(t, "concerts", got.Name)
	})

	t.Run("delete_referenced_category_conflicts", func(t *testing.T) {
		svc, _, usage := newSvc()
		c, err := svc.Create(ctx, "concerts")
		require.NoError(t, err)
		usage[c.ID] = true

		assertCode(t, svc.Delete(ctx, c.ID), domain.CodeConflict)
	})

	t.Run("delete_unreferenced_category", func(t *testing.T) {
		svc, _, _ := newSvc()
		c, err := svc.Create(ctx, "concerts")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, c.ID))
		_, err = svc.Get(ctx, c.ID)
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("blank_name_is_validation", func(t *testing.T) {
		svc, _, _ := newSvc()
		_, err := svc.Create(ctx, "  ")
		assertCode(t, err, domain.CodeValidation)
	})
}
