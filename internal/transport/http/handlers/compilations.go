package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/cityevents/services/listing-service/internal/application/compilation"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/dto"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/response"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/validate"
)

type CompilationsHandler struct {
	svc *compilation.Service
}

func NewCompilationsHandler(svc *compilation.Service) *CompilationsHandler {
	return &CompilationsHandler{svc: svc}
}

func (h *CompilationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompilationReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}
	c, err := h.svc.Create(r.Context(), req.Title, req.Pinned, req.EventIDs)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToCompilationResp(c))
}

func (h *CompilationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "compilation_id")

	var req dto.UpdateCompilationReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}
	c, err := h.svc.Update(r.Context(), id, domain.CompilationPatch{
		Title:    req.Title,
		Pinned:   req.Pinned,
		EventIDs: req.EventIDs,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCompilationResp(c))
}

func (h *CompilationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "compilation_id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompilationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "compilation_id")
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCompilationResp(c))
}

func (h *CompilationsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pinned, err := parseOptBool(q.Get("pinned"))
	if err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"pinned": "must be true or false",
		}))
		return
	}
	items, err := h.svc.List(r.Context(), pinned, atoiOr(q.Get("from"), 0), atoiOr(q.Get("size"), 0))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCompilationResps(items))
}
