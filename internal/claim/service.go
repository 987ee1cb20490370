package claim

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=claim
type Repository interface {
	CreateClaim(ctx context.Context, c *Claim) error
	GetClaim(ctx context.Context, id uuid.UUID) (*Claim, error)
	ListClaims(ctx context.Context, filter ListFilter) ([]*Claim, error)
	Reject(ctx context.Context, id uuid.UUID, reason string, processed time.Time) error
	BeginApprove(ctx context.Context) (ApproveTx, error)
}

// ApproveTx applies the approval and its ledger entry together.
type ApproveTx interface {
	Approve(ctx context.Context, id uuid.UUID, note string, processed time.Time) error
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	Commit() error
	Rollback() error
}

type ListFilter struct {
	Status  *Status
	StaffID *uuid.UUID
}

type Service struct {
	repo  Repository
	today func() time.Time
}

func NewService(repo Repository, today func() time.Time) *Service {
	return &Service{repo: repo, today: today}
}

type SubmitParams struct {
	StaffID     uuid.UUID
	Type        string
	Description string
	Amount      int64
	Date        time.Time
	Receipt     string
}

func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Claim, error) {
	if strings.TrimSpace(params.Type) == "" || strings.TrimSpace(params.Description) == "" {
		return nil, fmt.Errorf("%w: type and description are required", ErrInvalid)
	}

	if params.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	date := params.Date
	if date.IsZero() {
		date = s.today()
	}

	c := &Claim{
		StaffID:     params.StaffID,
		Type:        strings.TrimSpace(params.Type),
		Description: strings.TrimSpace(params.Description),
		Amount:      params.Amount,
		Date:        date,
		Receipt:     strings.TrimSpace(params.Receipt),
		Status:      StatusPending,
	}
	if err := s.repo.CreateClaim(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return s.repo.GetClaim(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Claim, error) {
	return s.repo.ListClaims(ctx, filter)
}

// Approve accepts a pending claim and books its amount as an expense in
// the same database transaction.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, note string) (*Claim, error) {
	c, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.today()
	note = strings.TrimSpace(note)

	tx, err := s.repo.BeginApprove(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning approval: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Approve(ctx, id, note, today); err != nil {
		return nil, err
	}

	ref := c.ID
	if err := tx.CreateTransaction(ctx, &transaction.Transaction{
		Type:        transaction.TypeExpense,
		Description: fmt.Sprintf("Claim Staff: %s (%s)", c.StaffName, c.Type),
		Amount:      c.Amount,
		Date:        today,
		Source:      transaction.SourceClaim,
		ReferenceID: &ref,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing approval: %w", err)
	}

	c.Status = StatusApproved
	c.Response = note
	c.ProcessedDate = &today

	return c, nil
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*Claim, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	c, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.today()

	if err := s.repo.Reject(ctx, id, reason, today); err != nil {
		return nil, err
	}

	c.Status = StatusRejected
	c.Response = reason
	c.ProcessedDate = &today

	return c, nil
}

func (s *Service) pending(ctx context.Context, id uuid.UUID) (*Claim, error) {
	c, err := s.repo.GetClaim(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Processed() {
		return nil, ErrAlreadyProcessed
	}

	return c, nil
}
