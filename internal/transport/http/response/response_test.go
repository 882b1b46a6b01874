package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "github.com/baechuer/cityevents/services/listing-service/internal/pkg/context"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

func TestData(t *testing.T) {
	rr := httptest.NewRecorder()
	Data(rr, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var env struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "world", env.Data["hello"])
}

func TestErr_MapsDomainCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation_maps_to_400", domain.ErrValidation("bad input"), http.StatusBadRequest, "validation_error"},
		{"not_found_maps_to_404", domain.ErrNotFound("nope"), http.StatusNotFound, "not_found"},
		{"conflict_maps_to_409", domain.ErrConflict("busy"), http.StatusConflict, "conflict"},
		{"unknown_maps_to_500", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/", nil)
			Err(rr, req, tc.err)

			assert.Equal(t, tc.status, rr.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}

func TestErr_CarriesMetaAndRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(appctx.WithRequestID(req.Context(), "req-123"))

	Err(rr, req, domain.ErrValidationMeta("invalid query param", map[string]string{
		"sort": "must be one of: event_date, views",
	}))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body.Error.RequestID)
	assert.Equal(t, "must be one of: event_date, views", body.Error.Meta["sort"])
}

func TestErr_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	Err(rr, req, errors.New("pq: connection refused"))

	assert.NotContains(t, rr.Body.String(), "connection refused")
}
