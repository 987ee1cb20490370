package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=staff
type Repository interface {
	CreateStaff(ctx context.Context, s *Staff) error
	GetStaff(ctx context.Context, id uuid.UUID) (*Staff, error)
	GetStaffByCode(ctx context.Context, code string) (*Staff, error)
	ListStaff(ctx context.Context) ([]*Staff, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteStaff(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo       Repository
	bcryptCost int
}

func NewService(repo Repository, bcryptCost int) *Service {
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

type CreateParams struct {
	Code     string
	Name     string
	Password string
	Position string
	Phone    string
	HireDate time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Staff, error) {
	code := strings.TrimSpace(params.Code)
	name := strings.TrimSpace(params.Name)

	if code == "" || name == "" || strings.TrimSpace(params.Position) == "" {
		return nil, fmt.Errorf("%w: code, name and position are required", ErrInvalid)
	}

	if params.HireDate.IsZero() {
		return nil, fmt.Errorf("%w: hire date is required", ErrInvalid)
	}

	_, err := s.repo.GetStaffByCode(ctx, code)
	if err == nil {
		return nil, ErrDuplicateCode
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking staff code: %w", err)
	}

	hash, err := hashPassword(params.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	st := &Staff{
		Code:         code,
		Name:         name,
		PasswordHash: hash,
		Position:     strings.TrimSpace(params.Position),
		Phone:        strings.TrimSpace(params.Phone),
		HireDate:     params.HireDate,
	}
	if err := s.repo.CreateStaff(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return s.repo.GetStaff(ctx, id)
}

// GetByCode looks a staff member up by login code, ignoring case.
func (s *Service) GetByCode(ctx context.Context, code string) (*Staff, error) {
	return s.repo.GetStaffByCode(ctx, strings.TrimSpace(code))
}

func (s *Service) List(ctx context.Context) ([]*Staff, error) {
	return s.repo.ListStaff(ctx)
}

// Delete removes a staff member. Staff still referenced by invoices, loans,
// claims or payroll cannot be deleted and yield ErrInUse.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteStaff(ctx, id)
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	hash, err := hashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, id, hash)
}
