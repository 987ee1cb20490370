package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
	"github.com/ehfoto/backoffice/internal/inventory"
)

type Handler struct {
	svc *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.ItemRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	item, err := h.svc.Create(r.Context(), req.Params())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ToItemResponse(item))
}

// list accepts ?category= and ?available=true.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := inventory.ListFilter{
		Available: r.URL.Query().Get("available") == "true",
	}

	if c := r.URL.Query().Get("category"); c != "" {
		filter.Category = &c
	}

	items, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(items, dto.ToItemResponse))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	item, err := h.svc.Update(r.Context(), id, req.Params())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
