package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	Category  *string
	Available bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ItemParams struct {
	Name      string
	Category  string
	Quantity  int
	Condition string
}

func (p ItemParams) validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" || strings.TrimSpace(p.Condition) == "" {
		return fmt.Errorf("%w: name, category and condition are required", ErrInvalid)
	}

	if p.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalid)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params ItemParams) (*Item, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	item := &Item{
		Name:      strings.TrimSpace(params.Name),
		Category:  strings.TrimSpace(params.Category),
		Quantity:  params.Quantity,
		Condition: strings.TrimSpace(params.Condition),
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params ItemParams) (*Item, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(params.Name)
	item.Category = strings.TrimSpace(params.Category)
	item.Quantity = params.Quantity
	item.Condition = strings.TrimSpace(params.Condition)

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}
