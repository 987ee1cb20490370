package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/inventory"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=loan
type Repository interface {
	CreateLoan(ctx context.Context, l *Loan) error
	GetLoan(ctx context.Context, id uuid.UUID) (*Loan, error)
	ListLoans(ctx context.Context, filter ListFilter) ([]*Loan, error)
	MarkReturned(ctx context.Context, id uuid.UUID) error
}

type ItemGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
}

// ListFilter narrows a loan listing. Search matches staff or item name, ignoring case.
type ListFilter struct {
	Status  *Status
	StaffID *uuid.UUID
	Search  string
}

type Service struct {
	repo  Repository
	items ItemGetter
	today func() time.Time
}

func NewService(repo Repository, items ItemGetter, today func() time.Time) *Service {
	return &Service{repo: repo, items: items, today: today}
}

type CreateParams struct {
	StaffID    uuid.UUID
	ItemID     uuid.UUID
	LoanDate   time.Time
	ReturnDate time.Time
	Purpose    string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Loan, error) {
	if params.StaffID == uuid.Nil || params.ItemID == uuid.Nil {
		return nil, fmt.Errorf("%w: staff and item are required", ErrInvalid)
	}

	if params.LoanDate.IsZero() || params.ReturnDate.IsZero() {
		return nil, fmt.Errorf("%w: loan and return dates are required", ErrInvalid)
	}

	if params.ReturnDate.Before(params.LoanDate) {
		return nil, fmt.Errorf("%w: return date is before loan date", ErrInvalid)
	}

	item, err := s.items.Get(ctx, params.ItemID)
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return nil, ErrItemUnavailable
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	if !item.Available() {
		return nil, ErrItemUnavailable
	}

	l := &Loan{
		StaffID:    params.StaffID,
		ItemID:     params.ItemID,
		ItemName:   item.Name,
		LoanDate:   params.LoanDate,
		ReturnDate: params.ReturnDate,
		Status:     StatusBorrowed,
		Purpose:    strings.TrimSpace(params.Purpose),
	}
	if err := s.repo.CreateLoan(ctx, l); err != nil {
		return nil, err
	}

	l.Overdue = l.IsOverdue(s.today())

	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Loan, error) {
	l, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Overdue = l.IsOverdue(s.today())

	return l, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Loan, error) {
	loans, err := s.repo.ListLoans(ctx, filter)
	if err != nil {
		return nil, err
	}

	today := s.today()
	for _, l := range loans {
		l.Overdue = l.IsOverdue(today)
	}

	return loans, nil
}

// Return closes a loan. Returning twice yields ErrAlreadyReturned.
func (s *Service) Return(ctx context.Context, id uuid.UUID) (*Loan, error) {
	l, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status == StatusReturned {
		return nil, ErrAlreadyReturned
	}

	if err := s.repo.MarkReturned(ctx, id); err != nil {
		return nil, err
	}

	l.Status = StatusReturned
	l.Overdue = false

	return l, nil
}

func (s *Service) OverdueCount(ctx context.Context) (int, error) {
	status := StatusBorrowed

	loans, err := s.List(ctx, ListFilter{Status: &status})
	if err != nil {
		return 0, err
	}

	n := 0

	for _, l := range loans {
		if l.Overdue {
			n++
		}
	}

	return n, nil
}
