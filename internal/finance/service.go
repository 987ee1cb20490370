package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/payroll"
	"github.com/ehfoto/backoffice/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finance
type Ledger interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
	Recent(ctx context.Context, n int) ([]*transaction.Transaction, error)
}

type InvoiceLister interface {
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type PayrollLister interface {
	List(ctx context.Context, filter payroll.ListFilter) ([]*payroll.Payroll, error)
}

type Service struct {
	ledger   Ledger
	invoices InvoiceLister
	payrolls PayrollLister
	today    func() time.Time
}

func NewService(ledger Ledger, invoices InvoiceLister, payrolls PayrollLister, today func() time.Time) *Service {
	return &Service{ledger: ledger, invoices: invoices, payrolls: payrolls, today: today}
}

func (s *Service) Report(ctx context.Context) (Report, error) {
	txs, err := s.ledger.List(ctx, transaction.ListFilter{})
	if err != nil {
		return Report{}, fmt.Errorf("listing transactions: %w", err)
	}

	paid := invoice.StatusPaid

	invoices, err := s.invoices.List(ctx, invoice.ListFilter{Status: &paid})
	if err != nil {
		return Report{}, fmt.Errorf("listing invoices: %w", err)
	}

	payrolls, err := s.payrolls.List(ctx, payroll.ListFilter{})
	if err != nil {
		return Report{}, fmt.Errorf("listing payrolls: %w", err)
	}

	return Summarize(txs, invoices, payrolls, s.today()), nil
}

// Recent returns the newest n ledger entries, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]*transaction.Transaction, error) {
	return s.ledger.Recent(ctx, n)
}
