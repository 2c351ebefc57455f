package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

type UserUpdateRequest struct {
	UserName      *string `json:"user_name,omitempty" validate:"omitempty,min=2,max=100"`
	UserPhone     *string `json:"user_phone,omitempty"`
	UserAvatarURL *string `json:"user_avatar_url,omitempty"`
}

type RoleGrantRequest struct {
	RoleName string `json:"role_name" validate:"required,min=2,max=40"`
}

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserSchoolID  *uuid.UUID `json:"user_school_id,omitempty"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserPhone     *string    `json:"user_phone,omitempty"`
	UserAvatarURL *string    `json:"user_avatar_url,omitempty"`
	UserIsActive  bool       `json:"user_is_active"`
	Roles         []string   `json:"roles,omitempty"`
	CreatedAt     time.Time  `json:"user_created_at"`
}

func FromModel(m *userModel.UserModel, roles []string) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID,
		UserSchoolID:  m.UserSchoolID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserPhone:     m.UserPhone,
		UserAvatarURL: m.UserAvatarURL,
		UserIsActive:  m.UserIsActive,
		Roles:         roles,
		CreatedAt:     m.UserCreatedAt,
	}
}
