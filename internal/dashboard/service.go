// Package dashboard computes the admin overview counters.
package dashboard

import (
	"context"
	"fmt"

	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/inventory"
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/loan"
	"github.com/ehfoto/backoffice/internal/staff"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type StaffLister interface {
	List(ctx context.Context) ([]*staff.Staff, error)
}

type InvoiceLister interface {
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type InventoryLister interface {
	List(ctx context.Context, filter inventory.ListFilter) ([]*inventory.Item, error)
}

type LoanLister interface {
	List(ctx context.Context, filter loan.ListFilter) ([]*loan.Loan, error)
}

type ClaimLister interface {
	List(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, error)
}

type Counts struct {
	Staff          int
	Invoices       int
	InventoryItems int
	ActiveLoans    int
	UnpaidInvoices int
	OverdueLoans   int
	PendingClaims  int
}

type Service struct {
	staff     StaffLister
	invoices  InvoiceLister
	inventory InventoryLister
	loans     LoanLister
	claims    ClaimLister
}

func NewService(staff StaffLister, invoices InvoiceLister, inventory InventoryLister, loans LoanLister, claims ClaimLister) *Service {
	return &Service{staff: staff, invoices: invoices, inventory: inventory, loans: loans, claims: claims}
}

func (s *Service) Counts(ctx context.Context) (Counts, error) {
	var c Counts

	staffList, err := s.staff.List(ctx)
	if err != nil {
		return c, fmt.Errorf("listing staff: %w", err)
	}

	c.Staff = len(staffList)

	invoices, err := s.invoices.List(ctx, invoice.ListFilter{})
	if err != nil {
		return c, fmt.Errorf("listing invoices: %w", err)
	}

	c.Invoices = len(invoices)

	for _, inv := range invoices {
		if !inv.IsPaid() {
			c.UnpaidInvoices++
		}
	}

	items, err := s.inventory.List(ctx, inventory.ListFilter{})
	if err != nil {
		return c, fmt.Errorf("listing inventory: %w", err)
	}

	c.InventoryItems = len(items)

	borrowed := loan.StatusBorrowed

	loans, err := s.loans.List(ctx, loan.ListFilter{Status: &borrowed})
	if err != nil {
		return c, fmt.Errorf("listing loans: %w", err)
	}

	c.ActiveLoans = len(loans)

	for _, l := range loans {
		if l.Overdue {
			c.OverdueLoans++
		}
	}

	pending := claim.StatusPending

	claims, err := s.claims.List(ctx, claim.ListFilter{Status: &pending})
	if err != nil {
		return c, fmt.Errorf("listing claims: %w", err)
	}

	c.PendingClaims = len(claims)

	return c, nil
}
