package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialRequestStatus(t *testing.T) {
	tests := []struct {
		name       string
		moderation bool
		limit      int
		expected   RequestStatus
	}{
		{"moderated_limited", true, 10, RequestPending},
		{"moderated_unlimited", true, 0, RequestPending},
		{"unmoderated_limited_autoconfirms", false, 10, RequestConfirmed},
		// Unlimited + moderation off still lands pending. Looks odd but is
		// the contract; see DESIGN.md.
		{"unmoderated_unlimited_stays_pending", false, 0, RequestPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitialRequestStatus(tt.moderation, tt.limit)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParticipationRequest_Cancel(t *testing.T) {
	now := mustTime(t, "2025-12-25T10:00:00Z")

	t.Run("cancel_pending", func(t *testing.T) {
		r := NewParticipationRequest("evt-1", "u1", RequestPending, now)
		r.Cancel()
		assert.Equal(t, RequestCanceled, r.Status)
	})

	t.Run("cancel_is_unguarded", func(t *testing.T) {
		r := NewParticipationRequest("evt-1", "u1", RequestConfirmed, now)
		r.Cancel()
		r.Cancel()
		assert.Equal(t, RequestCanceled, r.Status)
	})
}
