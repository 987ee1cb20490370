package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/loan"
)

type CreateLoanRequest struct {
	StaffID    uuid.UUID `json:"staff_id"`
	ItemID     uuid.UUID `json:"item_id" validate:"required"`
	LoanDate   Date      `json:"loan_date"`
	ReturnDate Date      `json:"return_date"`
	Purpose    string    `json:"purpose"`
}

func (r CreateLoanRequest) Params() loan.CreateParams {
	return loan.CreateParams{
		StaffID:    r.StaffID,
		ItemID:     r.ItemID,
		LoanDate:   r.LoanDate.Time(),
		ReturnDate: r.ReturnDate.Time(),
		Purpose:    r.Purpose,
	}
}

type LoanResponse struct {
	ID         uuid.UUID   `json:"id"`
	StaffID    uuid.UUID   `json:"staff_id"`
	StaffName  string      `json:"staff_name"`
	ItemID     uuid.UUID   `json:"item_id"`
	ItemName   string      `json:"item_name"`
	LoanDate   Date        `json:"loan_date"`
	ReturnDate Date        `json:"return_date"`
	Status     loan.Status `json:"status"`
	Purpose    string      `json:"purpose"`
	Overdue    bool        `json:"overdue"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
}

func ToLoanResponse(l *loan.Loan) LoanResponse {
	return LoanResponse{
		ID:         l.ID,
		StaffID:    l.StaffID,
		StaffName:  l.StaffName,
		ItemID:     l.ItemID,
		ItemName:   l.ItemName,
		LoanDate:   Date(l.LoanDate),
		ReturnDate: Date(l.ReturnDate),
		Status:     l.Status,
		Purpose:    l.Purpose,
		Overdue:    l.Overdue,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
