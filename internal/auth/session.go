package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

type Kind string

const (
	KindAdmin Kind = "admin"
	KindStaff Kind = "staff"
)

// Session is the server-side record a token points at. Staff fields are
// empty for admin sessions.
type Session struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	StaffID   uuid.UUID `json:"staff_id"`
	StaffCode string    `json:"staff_code,omitempty"`
	StaffName string    `json:"staff_name,omitempty"`
	Position  string    `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s.Kind == KindAdmin
}
