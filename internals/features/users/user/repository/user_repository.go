// file: internals/features/users/user/repository/user_repository.go
package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// emailScope membatasi query users ke satu email dalam satu scope.
// schoolID nil = scope platform (user_school_id IS NULL), bukan "semua
// sekolah" — email hanya unik per scope.
func emailScope(email string, schoolID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("LOWER(user_email) = ?", strings.ToLower(strings.TrimSpace(email)))
		if schoolID != nil {
			return q.Where("user_school_id = ?", *schoolID)
		}
		return q.Where("user_school_id IS NULL")
	}
}

// FindUserByEmailInSchool mencari user berdasar email DI DALAM satu tenant.
// schoolID nil berarti cari di scope platform (user tanpa sekolah).
func FindUserByEmailInSchool(db *gorm.DB, email string, schoolID *uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Scopes(emailScope(email, schoolID)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("user_id = ?", id).
		Update("user_password", hashed).Error
}

func SetUserActive(db *gorm.DB, id uuid.UUID, active bool) error {
	return db.Model(&userModel.UserModel{}).
		Where("user_id = ?", id).
		Update("user_is_active", active).Error
}
