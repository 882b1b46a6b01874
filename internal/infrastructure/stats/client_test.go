package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Hit(t *testing.T) {
	var got hitBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/hit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ts := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)
	err := c.Hit(context.Background(), "listing-service", "/events/abc", "10.0.0.1", ts)
	require.NoError(t, err)

	assert.Equal(t, "listing-service", got.App)
	assert.Equal(t, "/events/abc", got.URI)
	assert.Equal(t, "10.0.0.1", got.IP)
	assert.Equal(t, ts, got.Timestamp)
}

func TestClient_HitErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.Hit(context.Background(), "listing-service", "/events/abc", "10.0.0.1", time.Now())
	assert.Error(t, err)
}

func TestClient_Views(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("unique"))
		require.ElementsMatch(t, []string{"/events/a", "/events/b"}, r.URL.Query()["uris"])

		_ = json.NewEncoder(w).Encode([]viewStat{
			{URI: "/events/a", Hits: 7},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.Views(context.Background(), []string{"/events/a", "/events/b"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), got["/events/a"])
	assert.Zero(t, got["/events/b"]) // absent reads as zero
}

func TestClient_ViewsCollaboratorDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Views(context.Background(), []string{"/events/a"})
	assert.Error(t, err)
}
