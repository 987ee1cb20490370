package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/transaction"
)

type CreateTransactionRequest struct {
	Type        transaction.Type `json:"type" validate:"required,oneof=Pendapatan Perbelanjaan"`
	Description string           `json:"description" validate:"required"`
	Amount      int64            `json:"amount" validate:"gt=0"`
	Date        Date             `json:"date"`
}

func (r CreateTransactionRequest) Params() transaction.CreateParams {
	return transaction.CreateParams{
		Type:        r.Type,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date.Time(),
	}
}

type TransactionResponse struct {
	ID          uuid.UUID          `json:"id"`
	Type        transaction.Type   `json:"type"`
	Description string             `json:"description"`
	Amount      int64              `json:"amount"`
	Date        Date               `json:"date"`
	Source      transaction.Source `json:"source"`
	ReferenceID *uuid.UUID         `json:"reference_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func ToTransactionResponse(tx *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        tx.Type,
		Description: tx.Description,
		Amount:      tx.Amount,
		Date:        Date(tx.Date),
		Source:      tx.Source,
		ReferenceID: tx.ReferenceID,
		CreatedAt:   tx.CreatedAt,
	}
}

type ImportResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []TransactionResponse `json:"transactions"`
}
