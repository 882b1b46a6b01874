package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/cityevents/services/listing-service/internal/application/admission"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/dto"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/response"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/validate"
)

type RequestsHandler struct {
	svc *admission.Service
}

func NewRequestsHandler(svc *admission.Service) *RequestsHandler {
	return &RequestsHandler{svc: svc}
}

// POST /users/{user_id}/requests?event_id=...
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	eventID := r.URL.Query().Get("event_id")
	if eventID == "" {
		eventID = r.URL.Query().Get("eventId")
	}
	if eventID == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"event_id": "is required",
		}))
		return
	}

	req, err := h.svc.Create(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToRequestResp(req))
}

// GET /users/{user_id}/requests
func (h *RequestsHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	items, err := h.svc.ListOwn(r.Context(), userID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToRequestResps(items))
}

// PATCH /users/{user_id}/requests/{request_id}/cancel
func (h *RequestsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	requestID := chi.URLParam(r, "request_id")
	if !validate.IsUUID(requestID) {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"request_id": "must be uuid",
		}))
		return
	}

	req, err := h.svc.Cancel(r.Context(), userID, requestID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToRequestResp(req))
}

// GET /users/{user_id}/events/{event_id}/requests
func (h *RequestsHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	eventID := chi.URLParam(r, "event_id")

	items, err := h.svc.ListForEvent(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToRequestResps(items))
}

// PATCH /users/{user_id}/events/{event_id}/requests
func (h *RequestsHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	eventID := chi.URLParam(r, "event_id")

	var req dto.BatchUpdateReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}

	res, err := h.svc.BatchUpdate(r.Context(), userID, eventID, req.RequestIDs,
		domain.RequestStatus(req.Status))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.BatchUpdateResp{
		ConfirmedRequests: dto.ToRequestResps(res.Confirmed),
		RejectedRequests:  dto.ToRequestResps(res.Rejected),
	})
}
