package dto

import "time"

type StaffCreateRequest struct {
	Name     string     `json:"name" validate:"required,min=2,max=100"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    *string    `json:"phone,omitempty"`
	Number   *string    `json:"staff_number,omitempty"`
	Role     string     `json:"staff_role" validate:"required,oneof=teacher admin support"`
	Position *string    `json:"staff_position,omitempty"`
	HiredAt  *time.Time `json:"staff_hired_at,omitempty"`
}

type StaffUpdateRequest struct {
	Number   *string    `json:"staff_number,omitempty"`
	Role     *string    `json:"staff_role,omitempty" validate:"omitempty,oneof=teacher admin support"`
	Position *string    `json:"staff_position,omitempty"`
	HiredAt  *time.Time `json:"staff_hired_at,omitempty"`
	IsActive *bool      `json:"staff_is_active,omitempty"`
}
