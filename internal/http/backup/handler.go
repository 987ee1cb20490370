package backup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/backup"
	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
)

type Handler struct {
	svc *backup.Service
}

func NewHandler(svc *backup.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.svc.Export(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+bundle.Filename()+`"`)
	respond.JSON(w, http.StatusOK, dto.ToBackupResponse(bundle))
}
