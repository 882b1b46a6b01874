package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/cityevents/services/listing-service/internal/application/comment"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/dto"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/response"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/validate"
)

type CommentsHandler struct {
	svc *comment.Service
}

func NewCommentsHandler(svc *comment.Service) *CommentsHandler {
	return &CommentsHandler{svc: svc}
}

func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	eventID := chi.URLParam(r, "event_id")
	if !validate.IsUUID(eventID) {
		response.Err(w, r, domain.ErrValidation("event_id must be a uuid"))
		return
	}

	var req dto.CreateCommentReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}
	c, err := h.svc.Create(r.Context(), userID, eventID, req.Text)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToCommentResp(c))
}

func (h *CommentsHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")
	if !validate.IsUUID(eventID) {
		response.Err(w, r, domain.ErrValidation("event_id must be a uuid"))
		return
	}

	q := r.URL.Query()
	items, err := h.svc.ListForEvent(r.Context(), eventID, atoiOr(q.Get("from"), 0), atoiOr(q.Get("size"), 0))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCommentResps(items))
}
