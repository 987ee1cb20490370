package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/inventory"
)

type ItemRequest struct {
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Condition string `json:"condition" validate:"required"`
}

func (r ItemRequest) Params() inventory.ItemParams {
	return inventory.ItemParams{
		Name:      r.Name,
		Category:  r.Category,
		Quantity:  r.Quantity,
		Condition: r.Condition,
	}
}

type ItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Quantity  int        `json:"quantity"`
	Condition string     `json:"condition"`
	Available bool       `json:"available"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func ToItemResponse(i *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Quantity:  i.Quantity,
		Condition: i.Condition,
		Available: i.Available(),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
