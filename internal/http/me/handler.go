// Package me serves the staff portal. Every route acts on the staff member
// of the current session, never on an id taken from the request.
package me

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/auth"
	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/http/dto"
	"github.com/ehfoto/backoffice/internal/http/respond"
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/loan"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/staff"
)

type Services struct {
	Staff    *staff.Service
	Invoices *invoice.Service
	Loans    *loan.Service
	Claims   *claim.Service
	Payrolls *payroll.Service
}

type Handler struct {
	svc Services
}

func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.profile)
	r.Put("/password", h.changePassword)
	r.Get("/jobs", h.jobs)
	r.Post("/jobs/{id}/{role}/complete", h.completeJob)
	r.Get("/loans", h.loans)
	r.Post("/loans", h.borrow)
	r.Get("/claims", h.claims)
	r.Post("/claims", h.submitClaim)
	r.Get("/payroll", h.payroll)
}

func staffID(r *http.Request) uuid.UUID {
	sess, _ := auth.FromContext(r.Context())
	return sess.StaffID
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Staff.Get(r.Context(), staffID(r))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToStaffResponse(st))
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		http.Error(w, "passwords do not match", http.StatusBadRequest)
		return
	}

	if err := h.svc.Staff.ChangePassword(r.Context(), staffID(r), req.NewPassword); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) jobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.Invoices.StaffJobs(r.Context(), staffID(r))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(jobs, dto.ToJobResponse))
}

func (h *Handler) completeJob(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	role := invoice.Role(chi.URLParam(r, "role"))
	actor := invoice.Actor{StaffID: staffID(r)}

	inv, err := h.svc.Invoices.Complete(r.Context(), id, role, actor)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToJobResponse(invoice.Job{Invoice: inv, Role: role, Slot: *inv.Slot(role)}))
}

func (h *Handler) loans(w http.ResponseWriter, r *http.Request) {
	id := staffID(r)

	loans, err := h.svc.Loans.List(r.Context(), loan.ListFilter{StaffID: &id})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(loans, dto.ToLoanResponse))
}

func (h *Handler) borrow(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	req.StaffID = staffID(r)

	l, err := h.svc.Loans.Create(r.Context(), req.Params())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ToLoanResponse(l))
}

func (h *Handler) claims(w http.ResponseWriter, r *http.Request) {
	id := staffID(r)

	claims, err := h.svc.Claims.List(r.Context(), claim.ListFilter{StaffID: &id})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(claims, dto.ToClaimResponse))
}

func (h *Handler) submitClaim(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitClaimRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.Claims.Submit(r.Context(), req.Params(staffID(r)))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ToClaimResponse(c))
}

func (h *Handler) payroll(w http.ResponseWriter, r *http.Request) {
	id := staffID(r)

	payrolls, err := h.svc.Payrolls.List(r.Context(), payroll.ListFilter{StaffID: &id})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.Map(payrolls, dto.ToPayrollResponse))
}
