package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/cityevents/services/listing-service/internal/application/category"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/dto"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/response"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/validate"
)

type CategoriesHandler struct {
	svc *category.Service
}

func NewCategoriesHandler(svc *category.Service) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}
	c, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToCategoryResp(c))
}

func (h *CategoriesHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category_id")

	var req dto.CreateCategoryReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, domain.ErrValidation("invalid json body"))
		return
	}
	c, err := h.svc.Rename(r.Context(), id, req.Name)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCategoryResp(c))
}

func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category_id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category_id")
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCategoryResp(c))
}

func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.List(r.Context(), atoiOr(q.Get("from"), 0), atoiOr(q.Get("size"), 0))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCategoryResps(items))
}
