package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("invoice not found")
	ErrInvalid            = errors.New("invalid invoice")
	ErrAlreadyPaid        = errors.New("invoice already paid")
	ErrIneligibleAssignee = errors.New("staff position cannot take this role")
	ErrJobPaid            = errors.New("job has already been paid out")
	ErrNotAssigned        = errors.New("job has no assignee")
	ErrForbidden          = errors.New("job belongs to another staff member")
)

type Status string

const (
	StatusUnpaid Status = "Belum Dibayar"
	StatusPaid   Status = "Dibayar"
)

func (s Status) Valid() bool {
	return s == StatusUnpaid || s == StatusPaid
}

// Item is one billable line. Price is in sen.
type Item struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Invoice struct {
	ID         uuid.UUID
	Number     string
	CustomerNo string
	Client     string
	Detail     string
	Date       time.Time
	Items      []Item
	Total      int64
	Deposit    int64
	Status     Status
	Photo      Slot
	Edit       Slot
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Total sums item prices.
func Total(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price
	}

	return sum
}

// Balance is total minus deposit. It can be negative when the deposit
// exceeds the total; callers that display it floor at zero.
func (i *Invoice) Balance() int64 {
	return i.Total - i.Deposit
}

func (i *Invoice) IsPaid() bool {
	return i.Status == StatusPaid
}
