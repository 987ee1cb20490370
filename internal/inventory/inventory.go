package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("inventory item not found")
	ErrInUse    = errors.New("inventory item is still referenced by loans")
	ErrInvalid  = errors.New("invalid inventory item")
)

// Known categories. Other values are accepted.
const (
	CategoryCamera    = "Kamera"
	CategoryLens      = "Lensa"
	CategoryLighting  = "Pencahayaan"
	CategoryAccessory = "Aksesori"
	CategoryOther     = "Lain-lain"
)

type Item struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Quantity  int
	Condition string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Available reports whether the item can be checked out on a new loan.
func (i *Item) Available() bool {
	return i.Quantity > 0
}
