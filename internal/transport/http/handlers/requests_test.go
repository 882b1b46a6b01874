package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/cityevents/services/listing-service/internal/application/admission"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

func readerOf(s string) io.Reader { return strings.NewReader(s) }

type mockRequestRepo struct {
	byID map[string]*domain.ParticipationRequest
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{byID: map[string]*domain.ParticipationRequest{}}
}

func (m *mockRequestRepo) Create(ctx context.Context, r *domain.ParticipationRequest) error {
	m.byID[r.ID] = r
	return nil
}
func (m *mockRequestRepo) GetByID(ctx context.Context, id string) (*domain.ParticipationRequest, error) {
	if r, ok := m.byID[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound("participation request " + id + " not found")
}
func (m *mockRequestRepo) GetManyByID(ctx context.Context, ids []string) ([]*domain.ParticipationRequest, error) {
	var out []*domain.ParticipationRequest
	for _, id := range ids {
		if r, ok := m.byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *mockRequestRepo) Update(ctx context.Context, r *domain.ParticipationRequest) error {
	m.byID[r.ID] = r
	return nil
}
func (m *mockRequestRepo) UpdateAll(ctx context.Context, rs []*domain.ParticipationRequest) error {
	for _, r := range rs {
		m.byID[r.ID] = r
	}
	return nil
}
func (m *mockRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	var out []*domain.ParticipationRequest
	for _, r := range m.byID {
		if r.RequesterID == requesterID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *mockRequestRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error) {
	return nil, nil
}
func (m *mockRequestRepo) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	n := 0
	for _, r := range m.byID {
		if r.EventID == eventID && r.Status == domain.RequestConfirmed {
			n++
		}
	}
	return n, nil
}

func newRequestsHandler(events map[string]*domain.Event) (*RequestsHandler, *mockRequestRepo) {
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)
	repo := newMockRequestRepo()
	svc := admission.New(repo, &mockEventRepo{events: events}, allSet{}, mockClock{t: now}, nil, nil)
	return NewRequestsHandler(svc), repo
}

func TestRequestsHandler_Create(t *testing.T) {
	published := &domain.Event{
		ID:                "evt",
		OwnerID:           "owner",
		State:             domain.StatePublished,
		RequestModeration: true,
	}

	t.Run("missing_event_id_is_400", func(t *testing.T) {
		h, _ := newRequestsHandler(nil)
		req := httptest.NewRequest("POST", "/users/alice/requests", nil)
		req = withURLParams(req, map[string]string{"user_id": "alice"})
		rr := httptest.NewRecorder()
		h.Create(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("created_request_is_201", func(t *testing.T) {
		h, _ := newRequestsHandler(map[string]*domain.Event{published.ID: published})
		req := httptest.NewRequest("POST", "/users/alice/requests?event_id=evt", nil)
		req = withURLParams(req, map[string]string{"user_id": "alice"})
		rr := httptest.NewRecorder()
		h.Create(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"pending"`)
	})

	t.Run("own_event_is_409", func(t *testing.T) {
		h, _ := newRequestsHandler(map[string]*domain.Event{published.ID: published})
		req := httptest.NewRequest("POST", "/users/owner/requests?event_id=evt", nil)
		req = withURLParams(req, map[string]string{"user_id": "owner"})
		rr := httptest.NewRecorder()
		h.Create(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRequestsHandler_BatchUpdate(t *testing.T) {
	event := &domain.Event{
		ID:                "evt",
		OwnerID:           "owner",
		State:             domain.StatePublished,
		ParticipantLimit:  1,
		RequestModeration: true,
	}

	t.Run("invalid_body_is_400", func(t *testing.T) {
		h, _ := newRequestsHandler(map[string]*domain.Event{event.ID: event})
		req := httptest.NewRequest("PATCH", "/users/owner/events/evt/requests", readerOf("{"))
		req = withURLParams(req, map[string]string{"user_id": "owner", "event_id": "evt"})
		rr := httptest.NewRecorder()
		h.BatchUpdate(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("greedy_batch_partitions_response", func(t *testing.T) {
		h, repo := newRequestsHandler(map[string]*domain.Event{event.ID: event})
		r1 := domain.NewParticipationRequest("evt", "alice", domain.RequestPending, time.Now())
		r2 := domain.NewParticipationRequest("evt", "bob", domain.RequestPending, time.Now())
		repo.byID[r1.ID] = r1
		repo.byID[r2.ID] = r2

		body := `{"request_ids":["` + r1.ID + `","` + r2.ID + `"],"status":"confirmed"}`
		req := httptest.NewRequest("PATCH", "/users/owner/events/evt/requests", readerOf(body))
		req = withURLParams(req, map[string]string{"user_id": "owner", "event_id": "evt"})
		rr := httptest.NewRecorder()
		h.BatchUpdate(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"confirmed_requests"`)
		assert.Contains(t, rr.Body.String(), `"rejected_requests"`)
		assert.Equal(t, domain.RequestConfirmed, repo.byID[r1.ID].Status)
		assert.Equal(t, domain.RequestRejected, repo.byID[r2.ID].Status)
	})

	t.Run("bogus_status_is_400", func(t *testing.T) {
		h, _ := newRequestsHandler(map[string]*domain.Event{event.ID: event})
		body := `{"request_ids":[],"status":"archived"}`
		req := httptest.NewRequest("PATCH", "/users/owner/events/evt/requests", readerOf(body))
		req = withURLParams(req, map[string]string{"user_id": "owner", "event_id": "evt"})
		rr := httptest.NewRecorder()
		h.BatchUpdate(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRequestsHandler_Cancel(t *testing.T) {
	t.Run("invalid_uuid_is_400", func(t *testing.T) {
		h, _ := newRequestsHandler(nil)
		req := httptest.NewRequest("PATCH", "/users/alice/requests/nope/cancel", nil)
		req = withURLParams(req, map[string]string{"user_id": "alice", "request_id": "nope"})
		rr := httptest.NewRecorder()
		h.Cancel(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("cancel_own_request_is_200", func(t *testing.T) {
		h, repo := newRequestsHandler(nil)
		r1 := domain.NewParticipationRequest("evt", "alice", domain.RequestPending, time.Now())
		repo.byID[r1.ID] = r1

		req := httptest.NewRequest("PATCH", "/users/alice/requests/"+r1.ID+"/cancel", nil)
		req = withURLParams(req, map[string]string{"user_id": "alice", "request_id": r1.ID})
		rr := httptest.NewRecorder()
		h.Cancel(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"canceled"`)
	})
}
