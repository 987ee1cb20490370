// Package backup assembles a full snapshot of every collection for
// download. Restoring from a snapshot is not supported.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/ehfoto/backoffice/internal/claim"
	"github.com/ehfoto/backoffice/internal/inventory"
	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/loan"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/staff"
	"github.com/ehfoto/backoffice/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=backup
type StaffLister interface {
	List(ctx context.Context) ([]*staff.Staff, error)
}

type InventoryLister interface {
	List(ctx context.Context, filter inventory.ListFilter) ([]*inventory.Item, error)
}

type LoanLister interface {
	List(ctx context.Context, filter loan.ListFilter) ([]*loan.Loan, error)
}

type InvoiceLister interface {
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type ClaimLister interface {
	List(ctx context.Context, filter claim.ListFilter) ([]*claim.Claim, error)
}

type TransactionLister interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type PayrollLister interface {
	List(ctx context.Context, filter payroll.ListFilter) ([]*payroll.Payroll, error)
}

// Sources groups the collections a snapshot is read from.
type Sources struct {
	Staff        StaffLister
	Inventory    InventoryLister
	Loans        LoanLister
	Invoices     InvoiceLister
	Claims       ClaimLister
	Transactions TransactionLister
	Payrolls     PayrollLister
}

type Bundle struct {
	Staff        []*staff.Staff
	Inventory    []*inventory.Item
	Loans        []*loan.Loan
	Invoices     []*invoice.Invoice
	Claims       []*claim.Claim
	Transactions []*transaction.Transaction
	Payrolls     []*payroll.Payroll
	ExportedAt   time.Time
}

// Filename is the download name, stamped with the export day.
func (b *Bundle) Filename() string {
	return "EHFOTO_BACKUP_" + b.ExportedAt.Format(time.DateOnly) + ".json"
}

type Service struct {
	src Sources
	now func() time.Time
}

// NewService builds a backup service. now should report local studio time.
func NewService(src Sources, now func() time.Time) *Service {
	return &Service{src: src, now: now}
}

func (s *Service) Export(ctx context.Context) (*Bundle, error) {
	b := &Bundle{ExportedAt: s.now()}

	var err error

	if b.Staff, err = s.src.Staff.List(ctx); err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}

	if b.Inventory, err = s.src.Inventory.List(ctx, inventory.ListFilter{}); err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	if b.Loans, err = s.src.Loans.List(ctx, loan.ListFilter{}); err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}

	if b.Invoices, err = s.src.Invoices.List(ctx, invoice.ListFilter{}); err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	if b.Claims, err = s.src.Claims.List(ctx, claim.ListFilter{}); err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}

	if b.Transactions, err = s.src.Transactions.List(ctx, transaction.ListFilter{}); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	if b.Payrolls, err = s.src.Payrolls.List(ctx, payroll.ListFilter{}); err != nil {
		return nil, fmt.Errorf("listing payrolls: %w", err)
	}

	return b, nil
}
