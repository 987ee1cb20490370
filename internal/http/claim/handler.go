package claim

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
)

type Handler struct {
	svc *claim.Service
}

func NewHandler(svc *claim.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/reject", h.reject)
}

// list accepts ?status= and ?staff_id=.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	staffID, ok := respond.QueryUUID(w, r, "staff_id")
	if !ok {
		return
	}

	filter := claim.ListFilter{StaffID: staffID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := claim.Status(s)
		filter.Status = &status
	}

	claims, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(claims, dto.ToClaimResponse))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToClaimResponse(c))
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.svc.Approve)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.svc.Reject)
}

type processFunc func(ctx context.Context, id uuid.UUID, note string) (*claim.Claim, error)

func (h *Handler) process(w http.ResponseWriter, r *http.Request, fn processFunc) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	// The note is optional on approval, so the body may be omitted.
	var req dto.ProcessClaimRequest
	if !respond.DecodeOptional(w, r, &req) {
		return
	}

	c, err := fn(r.Context(), id, req.Note)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToClaimResponse(c))
}
