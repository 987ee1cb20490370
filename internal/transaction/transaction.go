package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("transaction not found")
	ErrInvalid  = errors.New("invalid transaction")
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "Pendapatan"
	TypeExpense Type = "Perbelanjaan"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Source records which part of the system wrote the entry.
type Source string

const (
	SourceManual  Source = "manual"
	SourcePayroll Source = "payroll"
	SourceClaim   Source = "claim"
	SourceImport  Source = "import"
)

// Transaction is one ledger entry.
type Transaction struct {
	ID          uuid.UUID
	Type        Type
	Description string
	Amount      int64 // Amount in sen
	Date        time.Time
	Source      Source
	ReferenceID *uuid.UUID // payroll or claim that produced the entry
	CreatedAt   time.Time
}
