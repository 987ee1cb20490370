package invoice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
	"github.com/ehfoto/backoffice/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/pay", h.markPaid)
	r.Put("/{id}/jobs/{role}", h.assign)
	r.Post("/{id}/jobs/{role}/complete", h.complete)
}

// JobRoutes serves the admin job board.
func (h *Handler) JobRoutes(r chi.Router) {
	r.Get("/", h.listJobs)
	r.Get("/stats", h.stats)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	inv, err := h.svc.Create(r.Context(), req.Params())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// list accepts ?status= and ?staff_id= (either role).
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	staffID, ok := respond.QueryUUID(w, r, "staff_id")
	if !ok {
		return
	}

	filter := invoice.ListFilter{AssigneeID: staffID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := invoice.Status(s)
		filter.Status = &status
	}

	invoices, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(invoices, dto.ToInvoiceResponse))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToInvoiceResponse(inv))
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

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.MarkPaid(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToInvoiceResponse(inv))
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	var req dto.AssignRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	inv, err := h.svc.Assign(r.Context(), id, invoice.Role(chi.URLParam(r, "role")), req.StaffID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToInvoiceResponse(inv))
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	role := invoice.Role(chi.URLParam(r, "role"))

	inv, err := h.svc.Complete(r.Context(), id, role, invoice.Actor{Admin: true})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToInvoiceResponse(inv))
}

// listJobs accepts ?filter=pending|complete.
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.ListJobs(r.Context(), invoice.JobFilter(r.URL.Query().Get("filter")))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(invoices, dto.ToInvoiceResponse))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.StaffStats(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(stats, dto.ToStaffStatResponse))
}
