package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/staff"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	MarkPaid(ctx context.Context, id uuid.UUID) error
	UpdateSlot(ctx context.Context, id uuid.UUID, role Role, slot Slot) error
	BeginCreate(ctx context.Context, prefix string) (CreateTx, error)
}

// CreateTx holds the numbering lock for a prefix until Commit or Rollback.
type CreateTx interface {
	ListNumbers(ctx context.Context, prefix string) ([]string, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error
	Commit() error
	Rollback() error
}

type StaffGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
}

type ListFilter struct {
	Status     *Status
	AssigneeID *uuid.UUID
}

// Actor is whoever performs a job action. Staff actors may only act on
// their own slots.
type Actor struct {
	Admin   bool
	StaffID uuid.UUID
}

type Service struct {
	repo   Repository
	staff  StaffGetter
	prefix string
	today  func() time.Time
}

func NewService(repo Repository, staff StaffGetter, prefix string, today func() time.Time) *Service {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Service{repo: repo, staff: staff, prefix: prefix, today: today}
}

type CreateParams struct {
	CustomerNo string
	Client     string
	Detail     string
	Date       time.Time
	Items      []Item
	Deposit    int64
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Client) == "" {
		return fmt.Errorf("%w: client is required", ErrInvalid)
	}

	if len(p.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalid)
	}

	for i, it := range p.Items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalid, i+1)
		}

		if it.Price < 0 {
			return fmt.Errorf("%w: item %d has a negative price", ErrInvalid, i+1)
		}
	}

	if p.Deposit < 0 {
		return fmt.Errorf("%w: deposit must not be negative", ErrInvalid)
	}

	return nil
}

// Create numbers and stores a new unpaid invoice. Numbering and insert
// share one database transaction so concurrent creates cannot collide.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = s.today()
	}

	items := make([]Item, len(params.Items))
	for i, it := range params.Items {
		items[i] = Item{Name: strings.TrimSpace(it.Name), Price: it.Price}
	}

	tx, err := s.repo.BeginCreate(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("beginning invoice create: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.ListNumbers(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("listing invoice numbers: %w", err)
	}

	inv := &Invoice{
		Number:     NextNumber(s.prefix, existing),
		CustomerNo: strings.TrimSpace(params.CustomerNo),
		Client:     strings.TrimSpace(params.Client),
		Detail:     strings.TrimSpace(params.Detail),
		Date:       date,
		Items:      items,
		Total:      Total(items),
		Deposit:    params.Deposit,
		Status:     StatusUnpaid,
	}

	if err := tx.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing invoice create: %w", err)
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}

// MarkPaid moves an invoice from unpaid to paid. The transition is one way.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.IsPaid() {
		return nil, ErrAlreadyPaid
	}

	if err := s.repo.MarkPaid(ctx, id); err != nil {
		return nil, err
	}

	inv.Status = StatusPaid

	return inv, nil
}

// Assign sets or clears (staffID == nil) the assignee of role. Assigning
// puts the job in progress; clearing resets its status.
func (s *Service) Assign(ctx context.Context, id uuid.UUID, role Role, staffID *uuid.UUID) (*Invoice, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, role)
	}

	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	slot := inv.Slot(role)
	if slot.Paid {
		return nil, ErrJobPaid
	}

	if staffID == nil {
		*slot = Slot{}
	} else {
		st, err := s.staff.Get(ctx, *staffID)
		if err != nil {
			if errors.Is(err, staff.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown staff", ErrInvalid)
			}

			return nil, fmt.Errorf("getting staff: %w", err)
		}

		if !canTake(st, role) {
			return nil, ErrIneligibleAssignee
		}

		assignee := st.ID
		*slot = Slot{AssigneeID: &assignee, AssigneeName: st.Name, Status: JobInProgress}
	}

	if err := s.repo.UpdateSlot(ctx, inv.ID, role, *slot); err != nil {
		return nil, err
	}

	return inv, nil
}

func canTake(st *staff.Staff, role Role) bool {
	if role == RoleEditor {
		return st.CanEdit()
	}

	return st.CanShoot()
}

// Complete marks role done. It requires an assignee, and a staff actor
// must be that assignee.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, role Role, actor Actor) (*Invoice, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, role)
	}

	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	slot := inv.Slot(role)
	if slot.AssigneeID == nil {
		return nil, ErrNotAssigned
	}

	if !actor.Admin && !slot.AssignedTo(actor.StaffID) {
		return nil, ErrForbidden
	}

	slot.Status = JobDone

	if err := s.repo.UpdateSlot(ctx, inv.ID, role, *slot); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) ListJobs(ctx context.Context, filter JobFilter) ([]*Invoice, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown job filter %q", ErrInvalid, filter)
	}

	invoices, err := s.repo.ListInvoices(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	return FilterJobs(invoices, filter), nil
}

// StaffJobs lists every slot a staff member holds.
func (s *Service) StaffJobs(ctx context.Context, staffID uuid.UUID) ([]Job, error) {
	invoices, err := s.repo.ListInvoices(ctx, ListFilter{AssigneeID: &staffID})
	if err != nil {
		return nil, err
	}

	return JobsFor(invoices, staffID), nil
}

func (s *Service) StaffStats(ctx context.Context) ([]StaffStat, error) {
	invoices, err := s.repo.ListInvoices(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	return Stats(invoices), nil
}
