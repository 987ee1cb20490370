package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/invoice"
	"github.com/ehfoto/backoffice/internal/payroll"
)

type PayrollJobRequest struct {
	InvoiceID uuid.UUID    `json:"invoice_id" validate:"required"`
	Role      invoice.Role `json:"role" validate:"required,oneof=photographer editor"`
	Amount    int64        `json:"amount" validate:"gte=0"`
}

type CreatePayrollRequest struct {
	StaffID uuid.UUID           `json:"staff_id" validate:"required"`
	Jobs    []PayrollJobRequest `json:"jobs" validate:"required,min=1,dive"`
}

func (r CreatePayrollRequest) JobParams() []payroll.JobParams {
	return Map(r.Jobs, func(j PayrollJobRequest) payroll.JobParams {
		return payroll.JobParams{InvoiceID: j.InvoiceID, Role: j.Role, Amount: j.Amount}
	})
}

type PayrollResponse struct {
	ID        uuid.UUID     `json:"id"`
	StaffID   uuid.UUID     `json:"staff_id"`
	StaffName string        `json:"staff_name"`
	Amount    int64         `json:"amount"`
	Date      Date          `json:"date"`
	Jobs      []payroll.Job `json:"jobs"`
	CreatedAt time.Time     `json:"created_at"`
}

func ToPayrollResponse(p *payroll.Payroll) PayrollResponse {
	jobs := p.Jobs
	if jobs == nil {
		jobs = []payroll.Job{}
	}

	return PayrollResponse{
		ID:        p.ID,
		StaffID:   p.StaffID,
		StaffName: p.StaffName,
		Amount:    p.Amount,
		Date:      Date(p.Date),
		Jobs:      jobs,
		CreatedAt: p.CreatedAt,
	}
}

type AvailableJobResponse struct {
	InvoiceID     uuid.UUID    `json:"invoice_id"`
	InvoiceNumber string       `json:"invoice_no"`
	Client        string       `json:"client"`
	Date          Date         `json:"date"`
	Role          invoice.Role `json:"role"`
}

func ToAvailableJobResponse(j payroll.AvailableJob) AvailableJobResponse {
	return AvailableJobResponse{
		InvoiceID:     j.InvoiceID,
		InvoiceNumber: j.InvoiceNumber,
		Client:        j.Client,
		Date:          Date(j.Date),
		Role:          j.Role,
	}
}
