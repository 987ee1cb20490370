package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ehfoto/backoffice/internal/auth"
	authStore "github.com/ehfoto/backoffice/internal/auth/store"
	"github.com/ehfoto/backoffice/internal/backup"
	"github.com/ehfoto/backoffice/internal/calendar"
	"github.com/ehfoto/backoffice/internal/claim"
	claimStore "github.com/ehfoto/backoffice/internal/claim/store"
	"github.com/ehfoto/backoffice/internal/config"
	"github.com/ehfoto/backoffice/internal/dashboard"
	"github.com/ehfoto/backoffice/internal/database"
	"github.com/ehfoto/backoffice/internal/finance"
	backofficeHttp "github.com/ehfoto/backoffice/internal/http"
	authHandler "github.com/ehfoto/backoffice/internal/http/auth"
	backupHandler "github.com/ehfoto/backoffice/internal/http/backup"
	claimHandler "github.com/ehfoto/backoffice/internal/http/claim"
	dashboardHandler "github.com/ehfoto/backoffice/internal/http/dashboard"
	financeHandler "github.com/ehfoto/backoffice/internal/http/finance"
	importHandler "github.com/ehfoto/backoffice/internal/http/importcsv"
	inventoryHandler "github.com/ehfoto/backoffice/internal/http/inventory"
	invoiceHandler "github.com/ehfoto/backoffice/internal/http/invoice"
	loanHandler "github.com/ehfoto/backoffice/internal/http/loan"
	meHandler "github.com/ehfoto/backoffice/internal/http/me"
	payrollHandler "github.com/ehfoto/backoffice/internal/http/payroll"
	settingsHandler "github.com/ehfoto/backoffice/internal/http/settings"
	staffHandler "github.com/ehfoto/backoffice/internal/http/staff"
	txHandler "github.com/ehfoto/backoffice/internal/http/transaction"
	"github.com/ehfoto/backoffice/internal/importer"
	"github.com/ehfoto/backoffice/internal/inventory"
	inventoryStore "github.com/ehfoto/backoffice/internal/inventory/store"
	"github.com/ehfoto/backoffice/internal/invoice"
	invoiceStore "github.com/ehfoto/backoffice/internal/invoice/store"
	"github.com/ehfoto/backoffice/internal/loan"
	loanStore "github.com/ehfoto/backoffice/internal/loan/store"
	"github.com/ehfoto/backoffice/internal/payroll"
	payrollStore "github.com/ehfoto/backoffice/internal/payroll/store"
	"github.com/ehfoto/backoffice/internal/settings"
	settingsStore "github.com/ehfoto/backoffice/internal/settings/store"
	"github.com/ehfoto/backoffice/internal/staff"
	staffStore "github.com/ehfoto/backoffice/internal/staff/store"
	"github.com/ehfoto/backoffice/internal/transaction"
	txStore "github.com/ehfoto/backoffice/internal/transaction/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.UsesDefaultJWTSecret() {
		slog.Warn("JWT_SECRET is not set; signing tokens with the development key")
	}

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("failed to load timezone", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	rdb, err := database.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	today := calendar.Today(loc)

	var (
		staffService       = staff.NewService(staffStore.New(db), cfg.Auth.BcryptCost)
		inventoryService   = inventory.NewService(inventoryStore.New(db))
		loanService        = loan.NewService(loanStore.New(db), inventoryService, today)
		invoiceService     = invoice.NewService(invoiceStore.New(db), staffService, cfg.Invoice.Prefix, today)
		payrollService     = payroll.NewService(payrollStore.New(db), staffService, invoiceService, today)
		claimService       = claim.NewService(claimStore.New(db), today)
		transactionService = transaction.NewService(txStore.New(db))
		importService      = importer.NewService(transactionService)
		financeService     = finance.NewService(transactionService, invoiceService, payrollService, today)
		settingsService    = settings.NewService(settingsStore.New(db))
		dashboardService   = dashboard.NewService(staffService, invoiceService, inventoryService, loanService, claimService)
		backupService      = backup.NewService(backup.Sources{
			Staff:        staffService,
			Inventory:    inventoryService,
			Loans:        loanService,
			Invoices:     invoiceService,
			Claims:       claimService,
			Transactions: transactionService,
			Payrolls:     payrollService,
		}, calendar.Now(loc))
		authService = auth.NewService(
			authStore.NewRedisStore(rdb),
			staffService,
			auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
			auth.AdminCredentials{Username: cfg.Auth.AdminUsername, Password: cfg.Auth.AdminPassword},
		)
	)

	router := backofficeHttp.New(authService, cfg.Server.AllowedOrigins, backofficeHttp.Handlers{
		Auth:         authHandler.NewHandler(authService),
		Staff:        staffHandler.NewHandler(staffService),
		Inventory:    inventoryHandler.NewHandler(inventoryService),
		Loans:        loanHandler.NewHandler(loanService),
		Invoices:     invoiceHandler.NewHandler(invoiceService),
		Payroll:      payrollHandler.NewHandler(payrollService),
		Claims:       claimHandler.NewHandler(claimService),
		Transactions: txHandler.NewHandler(transactionService),
		Import:       importHandler.NewHandler(importService),
		Finance:      financeHandler.NewHandler(financeService),
		Settings:     settingsHandler.NewHandler(settingsService),
		Backup:       backupHandler.NewHandler(backupService),
		Dashboard:    dashboardHandler.NewHandler(dashboardService),
		Me: meHandler.NewHandler(meHandler.Services{
			Staff:    staffService,
			Invoices: invoiceService,
			Loans:    loanService,
			Claims:   claimService,
			Payrolls: payrollService,
		}),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr, "timezone", loc.String())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
}
