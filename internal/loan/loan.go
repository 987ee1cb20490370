package loan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("loan not found")
	ErrInvalid         = errors.New("invalid loan")
	ErrItemUnavailable = errors.New("item is not available for loan")
	ErrAlreadyReturned = errors.New("loan already returned")
)

type Status string

const (
	StatusBorrowed Status = "Dipinjam"
	StatusReturned Status = "Dipulangkan"
)

func (s Status) Valid() bool {
	return s == StatusBorrowed || s == StatusReturned
}

// Loan is an equipment checkout. StaffName and ItemName are resolved on read.
// Overdue is derived by the service and never stored.
type Loan struct {
	ID         uuid.UUID
	StaffID    uuid.UUID
	StaffName  string
	ItemID     uuid.UUID
	ItemName   string
	LoanDate   time.Time
	ReturnDate time.Time
	Status     Status
	Purpose    string
	Overdue    bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// IsOverdue reports whether the loan is still out past its return date.
// Both dates are compared as calendar days.
func (l *Loan) IsOverdue(today time.Time) bool {
	return l.Status == StatusBorrowed && l.ReturnDate.Before(today)
}
