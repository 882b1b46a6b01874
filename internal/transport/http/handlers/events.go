package handlers

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appevent "github.com/baechuer/cityevents/services/listing-service/internal/application/event"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/dto"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/response"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *appevent.Service
}

func NewEventsHandler(svc *appevent.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// --- public ---

func (h *EventsHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	paid, err := parseOptBool(q.Get("paid"))
	if err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"paid": "must be true or false",
		}))
		return
	}
	rangeStart, err := parseOptTime(q.Get("range_start"))
	if err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"range_start": "must be RFC3339 timestamp",
		}))
		return
	}
	rangeEnd, err := parseOptTime(q.Get("range_end"))
	if err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"range_end": "must be RFC3339 timestamp",
		}))
		return
	}

	f := appevent.PublicFilter{
		Text:          q.Get("text"),
		CategoryIDs:   q["categories"],
		Paid:          paid,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		OnlyAvailable: q.Get("only_available") == "true",
		Sort:          q.Get("sort"),
		From:          atoiOr(q.Get("from"), 0),
		Size:          atoiOr(q.Get("size"), 0),
	}

	items, err := h.svc.ListPublic(r.Context(), f, clientIP(r))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(items))
}

func (h *EventsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsUUID(id) {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"event_id": "must be uuid",
		}))
		return
	}
	v, err := h.svc.GetPublic(r.Context(), id, clientIP(r))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(v))
}

// --- owner ---

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req dto.CreateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}
	if req.StartTime.IsZero() {
		response.Err(w, r, domain.ErrValidationMeta("invalid body", map[string]string{
			"event_date": "is required",
		}))
		return
	}

	in := appevent.CreateInput{
		CategoryID:        req.CategoryID,
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		Lat:               req.Lat,
		Lon:               req.Lon,
		StartTime:         req.StartTime,
		RequestModeration: true,
	}
	if req.Paid != nil {
		in.Paid = *req.Paid
	}
	if req.ParticipantLimit != nil {
		in.ParticipantLimit = *req.ParticipantLimit
	}
	if req.RequestModeration != nil {
		in.RequestModeration = *req.RequestModeration
	}

	e, err := h.svc.Create(r.Context(), userID, in)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToEventRespBare(e))
}

func (h *EventsHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	q := r.URL.Query()

	items, err := h.svc.ListOwn(r.Context(), userID, atoiOr(q.Get("from"), 0), atoiOr(q.Get("size"), 0))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(items))
}

func (h *EventsHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	eventID := chi.URLParam(r, "event_id")

	v, err := h.svc.GetForOwner(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(v))
}

func (h *EventsHandler) UpdateOwn(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	eventID := chi.URLParam(r, "event_id")

	var req dto.UpdateEventOwnerReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}

	e, err := h.svc.UpdateAsOwner(r.Context(), userID, eventID, req.ToEventPatch(),
		appevent.OwnerAction{StateAction: domain.OwnerStateAction(req.StateAction)})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventRespBare(e))
}

// --- admin ---

func (h *EventsHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rangeStart, err := parseOptTime(q.Get("range_start"))
	if err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"range_start": "must be RFC3339 timestamp",
		}))
		return
	}
	rangeEnd, err := parseOptTime(q.Get("range_end"))
	if err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"range_end": "must be RFC3339 timestamp",
		}))
		return
	}

	states := make([]domain.EventState, 0, len(q["states"]))
	for _, s := range q["states"] {
		states = append(states, domain.EventState(s))
	}

	f := appevent.AdminFilter{
		UserIDs:     q["users"],
		States:      states,
		CategoryIDs: q["categories"],
		RangeStart:  rangeStart,
		RangeEnd:    rangeEnd,
		From:        atoiOr(q.Get("from"), 0),
		Size:        atoiOr(q.Get("size"), 0),
	}

	items, err := h.svc.ListAdmin(r.Context(), f)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(items))
}

func (h *EventsHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	var req dto.UpdateEventAdminReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}

	e, err := h.svc.UpdateAsAdmin(r.Context(), eventID, req.ToEventPatch(),
		appevent.AdminAction{StateAction: domain.AdminStateAction(req.StateAction)})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventRespBare(e))
}

// --- helpers ---

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseOptBool(s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	u := t.UTC()
	return &u, nil
}
