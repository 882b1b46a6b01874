package compilation

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

type memCompilations struct {
	byID map[string]*domain.Compilation
	seq  []string
}

func newMemCompilations() *memCompilations {
	return &memCompilations{byID: map[string]*domain.Compilation{}}
}

func (m *memCompilations) Create(ctx context.Context, c *domain.Compilation) error {
	cp := *c
	m.byID[c.ID] = &cp
	m.seq = append(m.seq, c.ID)
	return nil
}

func (m *memCompilations) GetByID(ctx context.Context, id string) (*domain.Compilation, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("compilation " + id + " not found")
	}
	cp := *c
	return &cp, nil
}

func (m *memCompilations) Update(ctx context.Context, c *domain.Compilation) error {
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCompilations) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memCompilations) List(ctx context.Context, pinned *bool, from, size int) ([]*domain.Compilation, error) {
	var out []*domain.Compilation
	for _, id := range m.seq {
		c, ok := m.byID[id]
		if !ok {
			continue
		}
		if pinned != nil && c.Pinned != *pinned {
			continue
		}
		cp := *c
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

type memEvents map[string]*domain.Event

func (m memEvents) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m[id]
	return ok, nil
}

func (m memEvents) GetMany(ctx context.Context, ids []string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, id := range ids {
		if e, ok := m[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func assertCode(t *testing.T, err error, code domain.ErrCode) {
	t.Helper()
	require.Error(t, err)
	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, code, ae.Code)
}

func TestCompilationService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

	newSvc := func() (*Service, memEvents) {
		events := memEvents{
			"evt-1": {ID: "evt-1", Title: "Jazz night"},
			"evt-2": {ID: "evt-2", Title: "Winter fair"},
		}
		return New(newMemCompilations(), events, fakeClock{t: now}), events
	}

	t.Run("create_and_get", func(t *testing.T) {
		svc, _ := newSvc()
		c, err := svc.Create(ctx, "winter picks", true, []string{"evt-1", "evt-2"})
		require.NoError(t, err)

		got, err := svc.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, got.Pinned)
		assert.Equal(t, []string{"evt-1", "evt-2"}, got.EventIDs)
		require.Len(t, got.Events, 2)
		assert.Equal(t, "Jazz night", got.Events[0].Title)
	})

	t.Run("unknown_event_id_not_found", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.Create(ctx, "winter picks", false, []string{"ghost"})
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("empty_compilation_is_fine", func(t *testing.T) {
		svc, _ := newSvc()
		c, err := svc.Create(ctx, "empty shelf", false, nil)
		require.NoError(t, err)
		assert.Empty(t, c.EventIDs)
	})

	t.Run("list_filters_by_pinned", func(t *testing.T) {
		svc, _ := newSvc()
		pinnedC, err := svc.Create(ctx, "pinned shelf", true, nil)
		require.NoError(t, err)
		_, err = svc.Create(ctx, "loose shelf", false, nil)
		require.NoError(t, err)

		pinned := true
		got, err := svc.List(ctx, &pinned, 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, pinnedC.ID, got[0].ID)
	})

	t.Run("update_swaps_events_and_pin", func(t *testing.T) {
		svc, _ := newSvc()
		c, err := svc.Create(ctx, "winter picks", true, []string{"evt-1"})
		require.NoError(t, err)

		unpin := false
		events := []string{"evt-2"}
		got, err := svc.Update(ctx, c.ID, domain.CompilationPatch{Pinned: &unpin, EventIDs: &events})
		require.NoError(t, err)
		assert.False(t, got.Pinned)
		assert.Equal(t, []string{"evt-2"}, got.EventIDs)
	})

	t.Run("update_with_unknown_event_not_found", func(t *testing.T) {
		svc, _ := newSvc()
		c, err := svc.Create(ctx, "winter picks", true, nil)
		require.NoError(t, err)
		events := []string{"ghost"}
		_, err = svc.Update(ctx, c.ID, domain.CompilationPatch{EventIDs: &events})
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		svc, _ := newSvc()
		c, err := svc.Create(ctx, "winter picks", false, nil)
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, c.ID))
		_, err = svc.Get(ctx, c.ID)
		assertCode(t, err, domain.CodeNotFound)
	})
}
