package staff

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound         = errors.New("staff not found")
	ErrDuplicateCode    = errors.New("staff code already in use")
	ErrInUse            = errors.New("staff is still referenced by other records")
	ErrInvalid          = errors.New("invalid staff")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
)

const MinPasswordLength = 4

// MaxPasswordLength is the bcrypt input limit in bytes.
const MaxPasswordLength = 72

const (
	PositionPhotographer = "Photographer"
	PositionVideographer = "Videographer"
	PositionEditor       = "Editor"
	PositionAdmin        = "Admin"
)

// Staff is a studio employee. Code is the login id (e.g. EH001).
type Staff struct {
	ID           uuid.UUID
	Code         string
	Name         string
	PasswordHash string
	Position     string
	Phone        string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// CanShoot reports whether the staff member may take the photographer slot of an invoice.
func (s *Staff) CanShoot() bool {
	return s.Position == PositionPhotographer || s.Position == PositionVideographer
}

// CanEdit reports whether the staff member may take the editor slot of an invoice.
func (s *Staff) CanEdit() bool {
	return s.Position == PositionEditor
}

func (s *Staff) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(plain)) == nil
}

func hashPassword(plain string, cost int) (string, error) {
	if len(plain) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	if len(plain) > MaxPasswordLength {
		return "", fmt.Errorf("%w: password must be at most %d bytes", ErrInvalid, MaxPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}
