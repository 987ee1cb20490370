package payroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/invoice"
)

var (
	ErrNotFound       = errors.New("payroll not found")
	ErrInvalid        = errors.New("invalid payroll")
	ErrJobNotEligible = errors.New("job is not eligible for payment")
	ErrDuplicateJob   = errors.New("job selected more than once")
)

// Job is one paid role on a payslip.
type Job struct {
	InvoiceID     uuid.UUID    `json:"invoice_id"`
	InvoiceNumber string       `json:"invoice_number"`
	Role          invoice.Role `json:"role"`
	Description   string       `json:"description"`
	Amount        int64        `json:"amount"`
}

// Payroll is a payslip. StaffName is captured at payment time.
type Payroll struct {
	ID        uuid.UUID
	StaffID   uuid.UUID
	StaffName string
	Amount    int64
	Date      time.Time
	Jobs      []Job
	CreatedAt time.Time
}

// AvailableJob is a finished, unpaid role that can go on a payslip.
type AvailableJob struct {
	InvoiceID     uuid.UUID
	InvoiceNumber string
	Client        string
	Date          time.Time
	Role          invoice.Role
}

func describe(inv *invoice.Invoice, role invoice.Role) string {
	return fmt.Sprintf("%s: %s (%s)", role.Label(), inv.Client, inv.Number)
}

// Available lists every role staffID can currently be paid for.
func Available(invoices []*invoice.Invoice, staffID uuid.UUID) []AvailableJob {
	var jobs []AvailableJob

	for _, inv := range invoices {
		for _, role := range []invoice.Role{invoice.RolePhotographer, invoice.RoleEditor} {
			if !inv.Payable(role, staffID) {
				continue
			}

			jobs = append(jobs, AvailableJob{
				InvoiceID:     inv.ID,
				InvoiceNumber: inv.Number,
				Client:        inv.Client,
				Date:          inv.Date,
				Role:          role,
			})
		}
	}

	return jobs
}
