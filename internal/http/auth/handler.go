package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehfoto/backoffice/internal/auth"
	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
	r.With(h.svc.Middleware).Post("/logout", h.logout)
	r.With(h.svc.Middleware).Get("/session", h.session)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	token, sess, err := h.svc.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.LoginResponse{
		Token:   token,
		Session: dto.ToSessionResponse(sess),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())

	if err := h.svc.Logout(r.Context(), sess.ID); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())

	respond.JSON(w, http.StatusOK, dto.ToSessionResponse(sess))
}
