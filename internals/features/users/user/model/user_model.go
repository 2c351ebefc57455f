// file: internals/features/users/user/model/user_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users.
//
// UserSchoolID nullable: user platform (super-admin) tidak terikat sekolah.
// Email unik PER TENANT lewat uq_users_school_email — index ini juga yang
// mengamankan find-or-create akun wali dari race pembuatan ganda.
type UserModel struct {
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserSchoolID *uuid.UUID `gorm:"column:user_school_id;type:uuid;uniqueIndex:uq_users_school_email;index" json:"user_school_id,omitempty"`

	UserName      string  `gorm:"column:user_name;type:varchar(80);not null" json:"user_name"`
	UserEmail     string  `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_school_email" json:"user_email"`
	UserPassword  string  `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserPhone     *string `gorm:"column:user_phone;type:varchar(30)" json:"user_phone,omitempty"`
	UserAvatarURL *string `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	u.UserEmail = strings.ToLower(strings.TrimSpace(u.UserEmail))
	if u.UserEmail == "" {
		return errors.New("user_email wajib diisi")
	}
	if strings.TrimSpace(u.UserName) == "" {
		return errors.New("user_name wajib diisi")
	}
	return nil
}

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.UserEmail = strings.ToLower(strings.TrimSpace(u.UserEmail))
	return nil
}
