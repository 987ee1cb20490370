package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/invoice"
)

type InvoiceItem struct {
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
}

type CreateInvoiceRequest struct {
	CustomerNo string        `json:"customer_no"`
	Client     string        `json:"client" validate:"required"`
	Detail     string        `json:"detail"`
	Date       Date          `json:"date"`
	Items      []InvoiceItem `json:"items" validate:"required,min=1,dive"`
	Deposit    int64         `json:"deposit" validate:"gte=0"`
}

func (r CreateInvoiceRequest) Params() invoice.CreateParams {
	items := make([]invoice.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, invoice.Item{Name: it.Name, Price: it.Price})
	}

	return invoice.CreateParams{
		CustomerNo: r.CustomerNo,
		Client:     r.Client,
		Detail:     r.Detail,
		Date:       r.Date.Time(),
		Items:      items,
		Deposit:    r.Deposit,
	}
}

// AssignRequest sets or clears (null staff_id) one role of an invoice.
type AssignRequest struct {
	StaffID *uuid.UUID `json:"staff_id"`
}

type SlotResponse struct {
	StaffID   *uuid.UUID        `json:"staff_id"`
	StaffName string            `json:"staff_name,omitempty"`
	Status    invoice.JobStatus `json:"status,omitempty"`
	Paid      bool              `json:"paid"`
}

func toSlotResponse(s invoice.Slot) SlotResponse {
	return SlotResponse{
		StaffID:   s.AssigneeID,
		StaffName: s.AssigneeName,
		Status:    s.Status,
		Paid:      s.Paid,
	}
}

type InvoiceResponse struct {
	ID           uuid.UUID      `json:"id"`
	Number       string         `json:"invoice_no"`
	CustomerNo   string         `json:"customer_no"`
	Client       string         `json:"client"`
	Detail       string         `json:"detail"`
	Date         Date           `json:"date"`
	Items        []InvoiceItem  `json:"items"`
	Total        int64          `json:"total"`
	Deposit      int64          `json:"deposit"`
	Balance      int64          `json:"balance"`
	Status       invoice.Status `json:"status"`
	Photographer SlotResponse   `json:"photographer"`
	Editor       SlotResponse   `json:"editor"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		CustomerNo: inv.CustomerNo,
		Client:     inv.Client,
		Detail:     inv.Detail,
		Date:       Date(inv.Date),
		Items: Map(inv.Items, func(it invoice.Item) InvoiceItem {
			return InvoiceItem{Name: it.Name, Price: it.Price}
		}),
		Total:        inv.Total,
		Deposit:      inv.Deposit,
		Balance:      inv.Balance(),
		Status:       inv.Status,
		Photographer: toSlotResponse(inv.Photo),
		Editor:       toSlotResponse(inv.Edit),
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

// JobResponse is one role on one invoice, as shown to the assignee.
type JobResponse struct {
	InvoiceID     uuid.UUID         `json:"invoice_id"`
	InvoiceNumber string            `json:"invoice_no"`
	Client        string            `json:"client"`
	Detail        string            `json:"detail"`
	Date          Date              `json:"date"`
	Role          invoice.Role      `json:"role"`
	Status        invoice.JobStatus `json:"status"`
	Paid          bool              `json:"paid"`
}

func ToJobResponse(j invoice.Job) JobResponse {
	return JobResponse{
		InvoiceID:     j.Invoice.ID,
		InvoiceNumber: j.Invoice.Number,
		Client:        j.Invoice.Client,
		Detail:        j.Invoice.Detail,
		Date:          Date(j.Invoice.Date),
		Role:          j.Role,
		Status:        j.Slot.Status,
		Paid:          j.Slot.Paid,
	}
}

type StaffStatResponse struct {
	StaffID   uuid.UUID `json:"staff_id"`
	StaffName string    `json:"staff_name"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Pending   int       `json:"pending"`
}

func ToStaffStatResponse(s invoice.StaffStat) StaffStatResponse {
	return StaffStatResponse{
		StaffID:   s.StaffID,
		StaffName: s.StaffName,
		Total:     s.Total,
		Completed: s.Completed,
		Pending:   s.Pending,
	}
}
