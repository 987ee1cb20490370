package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/claim"
)

type SubmitClaimRequest struct {
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"amount" validate:"gt=0"`
	Date        Date   `json:"date"`
	Receipt     string `json:"receipt"`
}

func (r SubmitClaimRequest) Params(staffID uuid.UUID) claim.SubmitParams {
	return claim.SubmitParams{
		StaffID:     staffID,
		Type:        r.Type,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date.Time(),
		Receipt:     r.Receipt,
	}
}

// ProcessClaimRequest carries the admin's note on approval or the reason
// on rejection.
type ProcessClaimRequest struct {
	Note string `json:"note"`
}

type ClaimResponse struct {
	ID            uuid.UUID    `json:"id"`
	StaffID       uuid.UUID    `json:"staff_id"`
	StaffName     string       `json:"staff_name"`
	Type          string       `json:"type"`
	Description   string       `json:"description"`
	Amount        int64        `json:"amount"`
	Date          Date         `json:"date"`
	Receipt       string       `json:"receipt"`
	Status        claim.Status `json:"status"`
	Response      string       `json:"response"`
	ProcessedDate *Date        `json:"processed_date"`
	CreatedAt     time.Time    `json:"created_at"`
}

func ToClaimResponse(c *claim.Claim) ClaimResponse {
	return ClaimResponse{
		ID:            c.ID,
		StaffID:       c.StaffID,
		StaffName:     c.StaffName,
		Type:          c.Type,
		Description:   c.Description,
		Amount:        c.Amount,
		Date:          Date(c.Date),
		Receipt:       c.Receipt,
		Status:        c.Status,
		Response:      c.Response,
		ProcessedDate: datePtr(c.ProcessedDate),
		CreatedAt:     c.CreatedAt,
	}
}
