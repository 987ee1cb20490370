package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/staff"
)

type CreateStaffRequest struct {
	Code     string `json:"staff_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	Position string `json:"position" validate:"required,oneof=Photographer Videographer Editor Admin"`
	Phone    string `json:"phone"`
	HireDate Date   `json:"hire_date"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,min=4,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// StaffResponse never carries the password hash.
type StaffResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"staff_id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	Phone     string     `json:"phone"`
	HireDate  Date       `json:"hire_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func ToStaffResponse(s *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		Position:  s.Position,
		Phone:     s.Phone,
		HireDate:  Date(s.HireDate),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
