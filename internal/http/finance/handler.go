package finance

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/finance"
	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
)

const (
	defaultRecent = 6
	maxRecent     = 100
)

type Handler struct {
	svc *finance.Service
}

func NewHandler(svc *finance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/report", h.report)
	r.Get("/recent", h.recent)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Report(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToFinanceReportResponse(rep))
}

// recent accepts ?limit=, capped at maxRecent.
func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	n := defaultRecent

	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		n = min(v, maxRecent)
	}

	txs, err := h.svc.Recent(r.Context(), n)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(txs, dto.ToTransactionResponse))
}
