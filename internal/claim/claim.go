package claim

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("claim not found")
	ErrInvalid          = errors.New("invalid claim")
	ErrAlreadyProcessed = errors.New("claim already processed")
	ErrReasonRequired   = errors.New("a reason is required to reject a claim")
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Claim is a staff expense reimbursement request. Receipt is a free-form
// reference such as a file name or link.
type Claim struct {
	ID            uuid.UUID
	StaffID       uuid.UUID
	StaffName     string
	Type          string
	Description   string
	Amount        int64
	Date          time.Time
	Receipt       string
	Status        Status
	Response      string
	ProcessedDate *time.Time
	CreatedAt     time.Time
}

func (c *Claim) Processed() bool {
	return c.Status != StatusPending
}
