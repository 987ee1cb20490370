package payroll

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
	"github.com/ehfoto/backoffice/internal/payroll"
)

type Handler struct {
	svc *payroll.Service
}

func NewHandler(svc *payroll.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.pay)
	r.Get("/", h.list)
	r.Get("/available", h.available)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePayrollRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	p, err := h.svc.Pay(r.Context(), req.StaffID, req.JobParams())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ToPayrollResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	staffID, ok := respond.QueryUUID(w, r, "staff_id")
	if !ok {
		return
	}

	payrolls, err := h.svc.List(r.Context(), payroll.ListFilter{StaffID: staffID})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(payrolls, dto.ToPayrollResponse))
}

func (h *Handler) available(w http.ResponseWriter, r *http.Request) {
	staffID, ok := respond.QueryUUID(w, r, "staff_id")
	if !ok {
		return
	}

	if staffID == nil {
		http.Error(w, "staff_id is required", http.StatusBadRequest)
		return
	}

	jobs, err := h.svc.AvailableJobs(r.Context(), *staffID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(jobs, dto.ToAvailableJobResponse))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToPayrollResponse(p))
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
