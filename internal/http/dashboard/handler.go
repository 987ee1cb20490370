package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/dashboard"
	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.counts)
}

func (h *Handler) counts(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Counts(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToCountsResponse(c))
}
