package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/staff"
	"github.com/ehfoto/backoffice/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payroll
type Repository interface {
	GetPayroll(ctx context.Context, id uuid.UUID) (*Payroll, error)
	ListPayrolls(ctx context.Context, filter ListFilter) ([]*Payroll, error)
	DeletePayroll(ctx context.Context, id uuid.UUID) error
	BeginPay(ctx context.Context) (PayTx, error)
}

// PayTx is the single database transaction behind one payment.
// LockInvoice holds the invoice row until Commit or Rollback.
type PayTx interface {
	LockInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	CreatePayroll(ctx context.Context, p *Payroll) error
	MarkJobPaid(ctx context.Context, invoiceID uuid.UUID, role invoice.Role) error
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	Commit() error
	Rollback() error
}

type StaffGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
}

type InvoiceLister interface {
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type ListFilter struct {
	StaffID *uuid.UUID
}

type Service struct {
	repo     Repository
	staff    StaffGetter
	invoices InvoiceLister
	today    func() time.Time
}

func NewService(repo Repository, staff StaffGetter, invoices InvoiceLister, today func() time.Time) *Service {
	return &Service{repo: repo, staff: staff, invoices: invoices, today: today}
}

type JobParams struct {
	InvoiceID uuid.UUID
	Role      invoice.Role
	Amount    int64
}

type jobKey struct {
	invoiceID uuid.UUID
	role      invoice.Role
}

func validateJobs(jobs []JobParams) error {
	if len(jobs) == 0 {
		return fmt.Errorf("%w: select at least one job", ErrInvalid)
	}

	seen := make(map[jobKey]struct{}, len(jobs))

	for i, j := range jobs {
		if !j.Role.Valid() {
			return fmt.Errorf("%w: job %d has unknown role %q", ErrInvalid, i+1, j.Role)
		}

		if j.Amount < 0 {
			return fmt.Errorf("%w: job %d has a negative amount", ErrInvalid, i+1)
		}

		k := jobKey{j.InvoiceID, j.Role}
		if _, ok := seen[k]; ok {
			return ErrDuplicateJob
		}

		seen[k] = struct{}{}
	}

	return nil
}

// AvailableJobs lists the finished, unpaid roles held by staffID.
func (s *Service) AvailableJobs(ctx context.Context, staffID uuid.UUID) ([]AvailableJob, error) {
	invoices, err := s.invoices.List(ctx, invoice.ListFilter{AssigneeID: &staffID})
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return Available(invoices, staffID), nil
}

// Pay records a payslip for the selected jobs, marks each role paid and
// books the total as an expense. All three writes commit together or not
// at all. Eligibility is checked again under row locks so two concurrent
// payments cannot pay the same role twice.
func (s *Service) Pay(ctx context.Context, staffID uuid.UUID, jobs []JobParams) (*Payroll, error) {
	if err := validateJobs(jobs); err != nil {
		return nil, err
	}

	st, err := s.staff.Get(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown staff", ErrInvalid)
		}

		return nil, fmt.Errorf("getting staff: %w", err)
	}

	tx, err := s.repo.BeginPay(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning payroll: %w", err)
	}
	defer tx.Rollback()

	p := &Payroll{
		StaffID:   st.ID,
		StaffName: st.Name,
		Date:      s.today(),
		Jobs:      make([]Job, 0, len(jobs)),
	}

	for _, j := range jobs {
		inv, err := tx.LockInvoice(ctx, j.InvoiceID)
		if err != nil {
			if errors.Is(err, invoice.ErrNotFound) {
				return nil, fmt.Errorf("%w: invoice %s", ErrJobNotEligible, j.InvoiceID)
			}

			return nil, fmt.Errorf("locking invoice: %w", err)
		}

		if !inv.Payable(j.Role, st.ID) {
			return nil, fmt.Errorf("%w: %s %s", ErrJobNotEligible, inv.Number, j.Role)
		}

		p.Amount += j.Amount
		p.Jobs = append(p.Jobs, Job{
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.Number,
			Role:          j.Role,
			Description:   describe(inv, j.Role),
			Amount:        j.Amount,
		})
	}

	if err := tx.CreatePayroll(ctx, p); err != nil {
		return nil, err
	}

	for _, j := range p.Jobs {
		if err := tx.MarkJobPaid(ctx, j.InvoiceID, j.Role); err != nil {
			return nil, err
		}
	}

	// A zero total still marks the jobs paid but books nothing.
	if p.Amount > 0 {
		ref := p.ID
		if err := tx.CreateTransaction(ctx, &transaction.Transaction{
			Type:        transaction.TypeExpense,
			Description: "Gaji Staff (Per-Job): " + st.Name,
			Amount:      p.Amount,
			Date:        p.Date,
			Source:      transaction.SourcePayroll,
			ReferenceID: &ref,
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing payroll: %w", err)
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payroll, error) {
	return s.repo.GetPayroll(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payroll, error) {
	return s.repo.ListPayrolls(ctx, filter)
}

// Delete removes the payslip only. The invoice paid flags and the ledger
// expense stay as they are.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeletePayroll(ctx, id); err != nil {
		return err
	}

	slog.Warn("payroll deleted; paid flags and ledger entry left in place", "payroll_id", id)

	return nil
}
