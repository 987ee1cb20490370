package loan

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
	"github.com/ehfoto/backoffice/internal/loan"
)

type Handler struct {
	svc *loan.Service
}

func NewHandler(svc *loan.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/return", h.markReturned)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	l, err := h.svc.Create(r.Context(), req.Params())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ToLoanResponse(l))
}

// list accepts ?status=, ?staff_id= and ?search=.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	staffID, ok := respond.QueryUUID(w, r, "staff_id")
	if !ok {
		return
	}

	filter := loan.ListFilter{
		StaffID: staffID,
		Search:  r.URL.Query().Get("search"),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := loan.Status(s)
		filter.Status = &status
	}

	loans, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(loans, dto.ToLoanResponse))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToLoanResponse(l))
}

func (h *Handler) markReturned(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	l, err := h.svc.Return(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToLoanResponse(l))
}
