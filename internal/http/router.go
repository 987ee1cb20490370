package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ehfoto/backoffice/internal/auth"
	authHandler "github.com/ehfoto/backoffice/internal/http/auth"
	"github.com/ehfoto/backoffice/internal/http/backup"
	"github.com/ehfoto/backoffice/internal/http/claim"
	"github.com/ehfoto/backoffice/internal/http/dashboard"
	"github.com/ehfoto/backoffice/internal/http/finance"
	"github.com/ehfoto/backoffice/internal/http/importcsv"
	"github.com/ehfoto/backoffice/internal/http/inventory"
	"github.com/ehfoto/backoffice/internal/http/invoice"
	"github.com/ehfoto/backoffice/internal/http/loan"
	"github.com/ehfoto/backoffice/internal/http/me"
	"github.com/ehfoto/backoffice/internal/http/payroll"
	"github.com/ehfoto/backoffice/internal/http/settings"
	"github.com/ehfoto/backoffice/internal/http/staff"
	"github.com/ehfoto/backoffice/internal/http/transaction"
)

type Handlers struct {
	Auth         *authHandler.Handler
	Staff        *staff.Handler
	Inventory    *inventory.Handler
	Loans        *loan.Handler
	Invoices     *invoice.Handler
	Payroll      *payroll.Handler
	Claims       *claim.Handler
	Transactions *transaction.Handler
	Import       *importcsv.Handler
	Finance      *finance.Handler
	Settings     *settings.Handler
	Backup       *backup.Handler
	Dashboard    *dashboard.Handler
	Me           *me.Handler
}

// New builds the API router. Everything except login sits behind the
// session middleware; /me is for staff sessions and the rest for admin.
func New(sessions *auth.Service, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", h.Auth.Routes)

		r.Group(func(r chi.Router) {
			r.Use(sessions.Middleware)
			r.Use(auth.RequireStaff)

			r.Route("/me", h.Me.Routes)
		})

		r.Group(func(r chi.Router) {
			r.Use(sessions.Middleware)
			r.Use(auth.RequireAdmin)

			r.Route("/staff", h.Staff.Routes)
			r.Route("/inventory", h.Inventory.Routes)
			r.Route("/loans", h.Loans.Routes)
			r.Route("/invoices", h.Invoices.Routes)
			r.Route("/jobs", h.Invoices.JobRoutes)
			r.Route("/payroll", h.Payroll.Routes)
			r.Route("/claims", h.Claims.Routes)
			r.Route("/transactions", func(r chi.Router) {
				r.Route("/import", h.Import.Routes)
				h.Transactions.Routes(r)
			})
			r.Route("/finance", h.Finance.Routes)
			r.Route("/settings", h.Settings.Routes)
			r.Route("/backup", h.Backup.Routes)
			r.Route("/dashboard", h.Dashboard.Routes)
		})
	})

	return router
}
